package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

const groupID = "pedidos-audit-consumer-group"

// Tails the audit topic and pretty-prints every entry. Intended for
// watching what the sales team is doing to the order book in real time.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}
	topic := os.Getenv("AUDIT_TOPIC")
	if topic == "" {
		topic = "pedidos_audit"
	}

	log.Println("Starting audit consumer...")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{brokers},
		GroupID:        groupID,
		Topic:          topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()

	log.Printf("Consumer connected to topic %q on %s", topic, brokers)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Shutdown signal received, stopping consumer.")
				return
			}
			log.Printf("Error reading message: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		fmt.Printf("\n--- AUDIT %s ---\n", m.Time.Format(time.RFC3339))
		fmt.Printf("Key:   %s\n", string(m.Key))
		fmt.Printf("Value: %s\n", string(m.Value))
		fmt.Println("--- END ---")
	}
}
