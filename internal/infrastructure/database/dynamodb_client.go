package database

import (
	"context"
	"os"

	"payment_orchestrator/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const DefaultReconciliationTable = "payment_reconciliation"

// Settings holds the DynamoDB connection values read from the environment.
//
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - RECONCILIATION_TABLE (default: payment_reconciliation)
type Settings struct {
	Region              string
	AccessKeyID         string
	SecretAccessKey     string
	Endpoint            string
	ReconciliationTable string
}

func SettingsFromEnv() Settings {
	return Settings{
		Region:              getenvDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:         getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey:     getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:            os.Getenv("DYNAMODB_ENDPOINT"),
		ReconciliationTable: getenvDefault("RECONCILIATION_TABLE", DefaultReconciliationTable),
	}
}

// ConnectDynamoDB builds a client from s and exits the process when the AWS
// config cannot be loaded.
func ConnectDynamoDB(s Settings) *dynamodb.Client {
	cfg, err := NewAWSConfig(context.Background(), s)
	if err != nil {
		logger.Fatal("failed to create dynamodb config", zap.Error(err))
	}

	var opts []func(*dynamodb.Options)
	if s.Endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(s.Endpoint)
		})
	}

	logger.Info("dynamodb client ready",
		zap.String("region", s.Region),
		zap.String("endpoint", s.Endpoint),
		zap.String("table", s.ReconciliationTable),
	)
	return dynamodb.NewFromConfig(cfg, opts...)
}

func NewAWSConfig(ctx context.Context, s Settings) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(s.AccessKeyID, s.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
