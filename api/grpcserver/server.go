package grpcserver

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "lfss/api/pb"
	"lfss/service"
)

// Server adapts SeqService to gRPC.
type Server struct {
	pb.UnimplementedSeqServiceServer
	svc *service.SeqService
}

func NewServer(svc *service.SeqService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Insert(
	ctx context.Context,
	req *pb.InsertRequest,
) (*pb.InsertResponse, error) {
	seq := s.svc.Insert(req.Value)

	return &pb.InsertResponse{
		Seq:  seq,
		Size: uint32(s.svc.Len()),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) ReadAt(
	ctx context.Context,
	req *pb.ReadAtRequest,
) (*pb.ReadAtResponse, error) {
	// The core leaves out-of-range undefined; the wire surface
	// bounds-checks so remote misuse cannot crash the engine.
	if req.Pos >= uint64(s.svc.Len()) {
		return nil, status.Errorf(
			codes.OutOfRange,
			"pos %d out of range", req.Pos,
		)
	}

	return &pb.ReadAtResponse{
		Value: s.svc.At(int(req.Pos)),
	}, nil
}

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	seq, values := s.svc.Snapshot()

	log.Printf("[gRPC] GetSnapshot seq=%d len=%d", seq, len(values))

	return &pb.SnapshotResponse{
		Seq:    seq,
		Values: values,
	}, nil
}

func (s *Server) GetStats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()

	return &pb.StatsResponse{
		Published:     st.Published,
		Retired:       st.Reclaim.Retired,
		Destroyed:     st.Reclaim.Destroyed,
		Pending:       st.Reclaim.Pending,
		BankLoans:     st.Bank.Loans,
		BankAllocs:    st.Bank.Allocs,
		BankReturns:   st.Bank.Returns,
		EventsDropped: st.EventsDropped,
	}, nil
}
