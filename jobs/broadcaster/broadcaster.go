package broadcaster

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"lfss/service"
)

const (
	tickInterval = 250 * time.Millisecond
	maxPerTick   = 1024
)

// Broadcaster drains the service outbox on a ticker and publishes
// each event to a Kafka topic, keyed by publication sequence.
type Broadcaster struct {
	svc      *service.SeqService
	producer sarama.SyncProducer
	topic    string
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	svc *service.SeqService,
	brokers []string,
	topic string,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		svc:      svc,
		producer: producer,
		topic:    topic,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// ------------------------------------------------
// DRAIN LOGIC
// ------------------------------------------------

func (b *Broadcaster) drainOnce() {
	events := b.svc.Events()
	for i := 0; i < maxPerTick; i++ {
		select {
		case ev := <-events:
			b.publish(ev)
		default:
			return
		}
	}
}

func (b *Broadcaster) publish(ev service.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: b.topic,
		Key:   sarama.StringEncoder(strconv.FormatUint(ev.Seq, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err := b.producer.SendMessage(msg); err != nil {
		log.Printf("[broadcaster] publish seq=%d failed: %v", ev.Seq, err)
	}
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
