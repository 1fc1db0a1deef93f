// Package mqtt ingests readings published to a broker, for devices that
// cannot hold an HTTP connection open.
package mqtt

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"os"
	"time"

	"sensorhub/config"
	"sensorhub/internal/delivery"
	"sensorhub/internal/errors"
	"sensorhub/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

const (
	subscribeQoS      = 1
	disconnectQuiesce = 250 // milliseconds
)

type mqttServer struct {
	cfg     *config.MQTTConfig
	handler *messageHandler
	logger  *slog.Logger
	client  paho.Client
}

// ServerParams holds dependencies for the MQTT delivery, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	IngestionUC usecase.IngestionUsecase
}

// NewServer builds the MQTT delivery. It stays idle unless mqtt.enabled is set.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("transport", "mqtt"))
	srv := &mqttServer{
		cfg:     params.Cfg.MQTT,
		handler: newMessageHandler(params.Cfg.MQTT.Topic, params.IngestionUC, logger),
		logger:  logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve connects to the broker and subscribes. Messages are handled on
// paho's goroutines until stop disconnects.
func (s *mqttServer) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("MQTT ingest disabled")

		return nil
	}

	opts, err := s.clientOptions(ctx)
	if err != nil {
		return err
	}

	s.client = paho.NewClient(opts)
	s.logger.Info("Connecting to MQTT broker", slog.String("broker", s.cfg.BrokerURL))
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "mqtt connect")
	}

	return nil
}

func (s *mqttServer) clientOptions(ctx context.Context) (*paho.ClientOptions, error) {
	opts := paho.NewClientOptions().
		AddBroker(s.cfg.BrokerURL).
		SetClientID(s.cfg.ClientID).
		SetOrderMatters(false).
		SetAutoAckDisabled(true).
		SetKeepAlive(s.cfg.KeepAlive).
		SetPingTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetCleanSession(s.cfg.SharedGroup == "")

	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
		opts.SetPassword(s.cfg.Password)
	}

	if s.cfg.CACertPath != "" {
		tlsCfg, err := loadTLSConfig(s.cfg.CACertPath)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	topic := subscriptionTopic(s.cfg.Topic, s.cfg.SharedGroup)
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		s.logger.Error("MQTT connection lost", slog.Any("error", err))
	}
	// Subscribing on every connect restores the subscription after a reconnect.
	opts.OnConnect = func(c paho.Client) {
		s.logger.Info("MQTT connected, subscribing", slog.String("topic", topic))
		token := c.Subscribe(topic, subscribeQoS, func(_ paho.Client, m paho.Message) {
			s.handler.handle(ctx, m)
		})
		if token.Wait() && token.Error() != nil {
			s.logger.Error("MQTT subscribe failed", slog.String("topic", topic), slog.Any("error", token.Error()))
		}
	}

	return opts, nil
}

func (s *mqttServer) stop(_ context.Context) error {
	if s.client == nil {
		return nil
	}

	s.logger.Info("Disconnecting from MQTT broker")
	s.client.Disconnect(disconnectQuiesce)

	return nil
}

// subscriptionTopic prefixes topic with $share/<group>/ so several instances
// split the load instead of each ingesting every message.
func subscriptionTopic(topic, sharedGroup string) string {
	if sharedGroup == "" {
		return topic
	}

	return "$share/" + sharedGroup + "/" + topic
}

func loadTLSConfig(caFile string) (*tls.Config, error) {
	ca, err := os.ReadFile(caFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read mqtt CA file %s", caFile)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(ca) {
		return nil, errors.Errorf("no certificates found in %s", caFile)
	}

	return &tls.Config{MinVersion: tls.VersionTLS12, RootCAs: pool}, nil
}
