package serde

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// Logger receives kafka-go's internal errors.
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
}

// WriterConfig configures the *kafka.Writer a MessageProducer can publish through.
type WriterConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC"`

	// RequiredAcks is -1 (all) or 1 (leader). Zero means all.
	RequiredAcks int           `yaml:"required_acks" env:"KAFKA_REQUIRED_ACKS"`
	MaxAttempts  int           `yaml:"max_attempts" env:"KAFKA_MAX_ATTEMPTS"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"KAFKA_WRITE_TIMEOUT"`

	Async        bool          `yaml:"async" env:"KAFKA_ASYNC"`
	BatchSize    int           `yaml:"batch_size" env:"KAFKA_BATCH_SIZE"`
	BatchTimeout time.Duration `yaml:"batch_timeout" env:"KAFKA_BATCH_TIMEOUT"`

	// CompressionCodec is one of gzip, snappy, lz4, zstd or empty.
	CompressionCodec string `yaml:"compression_codec" env:"KAFKA_COMPRESSION_CODEC"`

	TLS  TLSConfig  `yaml:"tls"`
	SASL SASLConfig `yaml:"sasl"`

	Logger Logger `yaml:"-" ignored:"true"`
}

// TLSConfig holds the broker TLS settings.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled" env:"KAFKA_TLS_ENABLED"`
	CACertPath         string `yaml:"ca_cert_path" env:"KAFKA_TLS_CA_CERT"`
	ClientCertPath     string `yaml:"client_cert_path" env:"KAFKA_TLS_CLIENT_CERT"`
	ClientKeyPath      string `yaml:"client_key_path" env:"KAFKA_TLS_CLIENT_KEY"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" env:"KAFKA_TLS_INSECURE_SKIP_VERIFY"`
}

// SASLConfig holds the broker SASL settings.
type SASLConfig struct {
	Enabled bool `yaml:"enabled" env:"KAFKA_SASL_ENABLED"`

	// Mechanism is PLAIN, SCRAM-SHA-256 or SCRAM-SHA-512.
	Mechanism string `yaml:"mechanism" env:"KAFKA_SASL_MECHANISM"`
	Username  string `yaml:"username" env:"KAFKA_SASL_USERNAME"`
	Password  string `yaml:"password" env:"KAFKA_SASL_PASSWORD"`
}

// NewWriter builds a *kafka.Writer from cfg. The writer connects lazily on
// the first write; close it when done.
func NewWriter(cfg WriterConfig) (*kafka.Writer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("serde: at least one broker is required")
	}
	if cfg.RequiredAcks == 0 {
		cfg.RequiredAcks = int(kafka.RequireAll)
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 10
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}

	var tlsConfig *tls.Config
	var err error
	if cfg.TLS.Enabled {
		tlsConfig, err = createTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	var mechanism sasl.Mechanism
	if cfg.SASL.Enabled {
		mechanism, err = createSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
		}
	}

	codec, err := compressionCodec(cfg.CompressionCodec)
	if err != nil {
		return nil, err
	}

	writerConfig := kafka.WriterConfig{
		Brokers:          cfg.Brokers,
		Topic:            cfg.Topic,
		Balancer:         &kafka.LeastBytes{},
		MaxAttempts:      cfg.MaxAttempts,
		WriteTimeout:     cfg.WriteTimeout,
		RequiredAcks:     cfg.RequiredAcks,
		CompressionCodec: codec,
		ErrorLogger:      errorLogger(cfg.Logger),
		Dialer: &kafka.Dialer{
			TLS:           tlsConfig,
			SASLMechanism: mechanism,
		},
	}
	if cfg.Async {
		writerConfig.Async = true
		writerConfig.BatchSize = cfg.BatchSize
		writerConfig.BatchTimeout = cfg.BatchTimeout
	}

	return kafka.NewWriter(writerConfig), nil
}

func compressionCodec(name string) (kafka.CompressionCodec, error) {
	switch name {
	case "":
		return nil, nil
	case "gzip":
		return &compress.GzipCodec, nil
	case "snappy":
		return &compress.SnappyCodec, nil
	case "lz4":
		return &compress.Lz4Codec, nil
	case "zstd":
		return &compress.ZstdCodec, nil
	default:
		return nil, fmt.Errorf("serde: unsupported compression codec: %s", name)
	}
}

func errorLogger(logger Logger) kafka.Logger {
	if logger == nil {
		return nil
	}
	return kafka.LoggerFunc(func(msg string, args ...interface{}) {
		logger.Error("Kafka writer error", fmt.Errorf(msg, args...), nil)
	})
}

func createTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = pool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

func createSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{Username: cfg.Username, Password: cfg.Password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", cfg.Mechanism)
	}
}
