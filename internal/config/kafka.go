package config

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// NewKafkaWriter builds a writer for the given topic over a comma-separated
// broker list.
func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
