// Package app provides service initialization.
package app

import (
	"github.com/guttosm/pack-planner/config"
	"github.com/guttosm/pack-planner/internal/circuitbreaker"
	"github.com/guttosm/pack-planner/internal/events"
	"github.com/guttosm/pack-planner/internal/service"
	"github.com/guttosm/pack-planner/internal/shipments"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	ShipmentsClient         shipments.Client
	ShipmentsCircuitBreaker *circuitbreaker.CircuitBreaker
	Publisher               events.Publisher
	PackingService          *service.PackingServiceImpl
}

// Stop releases the session store and closes the event publisher.
func (s *ServiceComponents) Stop() {
	if s == nil {
		return
	}
	s.PackingService.Stop()
	if err := s.Publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close event publisher")
	}
}

// InitializeServices builds the shipments API client and the packing
// service. loggingService may be nil.
func InitializeServices(cfg config.Config, loggingService service.LoggingService) *ServiceComponents {
	shipmentsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Upstream.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Upstream.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Upstream.CircuitBreakerTimeout,
		Name:             "shipments-api",
		IsFailure:        shipments.IsUpstreamFailure,
	})

	httpClient := shipments.NewHTTPClient(cfg.Upstream.BaseURL,
		shipments.WithTimeout(cfg.Upstream.Timeout),
		shipments.WithToken(cfg.Upstream.Token),
	)
	client := shipments.NewClientWithCircuitBreaker(httpClient, shipmentsCB)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Events.Enabled() {
		publisher = events.NewKafkaPublisher(events.KafkaConfig{
			Brokers:      cfg.Events.Brokers,
			Topic:        cfg.Events.Topic,
			BatchTimeout: cfg.Events.BatchTimeout,
			RequiredAcks: cfg.Events.RequiredAcks,
		})
		log.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("Publishing shipment events to Kafka")
	}

	opts := []service.Option{
		service.WithPublisher(publisher),
		service.WithCapacity(cfg.Session.Capacity),
		service.WithSessionTTL(cfg.Session.TTL),
		service.WithShards(cfg.Session.Shards),
	}
	if cfg.Session.AdvisoryTTL > 0 {
		opts = append(opts, service.WithAdvisoryTTL(cfg.Session.AdvisoryTTL))
	}
	if loggingService != nil {
		opts = append(opts, service.WithLoggingService(loggingService))
	}

	return &ServiceComponents{
		ShipmentsClient:         client,
		ShipmentsCircuitBreaker: shipmentsCB,
		Publisher:               publisher,
		PackingService:          service.NewPackingService(client, opts...),
	}
}
