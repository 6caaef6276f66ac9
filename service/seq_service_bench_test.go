package service

import (
	"sync/atomic"
	"testing"

	"lfss/domain/sortedseq"
)

func BenchmarkInsert_Service(b *testing.B) {
	seq := sortedseq.New()
	defer seq.Close()

	svc := NewSeqService(seq, 1<<16, nil)

	var n atomic.Int64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			svc.Insert(int32(n.Add(1)))
		}
	})
}
