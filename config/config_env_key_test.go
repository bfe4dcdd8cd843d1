package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":     "",
			"rabbitmqUrl": "",
		},
		"jwt": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_RABBITMQURL", want: "pubsub.rabbitmqUrl"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: travelhub
jwt:
  secretKey: from-file
  issuer: travelhub
  audience: travelhub-clients
cache:
  enabled: false
  hotelsTtl: 30s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("JWT_SECRETKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "travelhub", cfg.Env.ServiceName)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, "travelhub-clients", cfg.JWT.Audience)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 30*time.Second, cfg.Cache.HotelsTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "config file absent.yaml not found")
}

func TestPubSubConfig_KafkaBrokerList(t *testing.T) {
	cfg := &PubSubConfig{KafkaBrokers: " kafka-1:9092, ,kafka-2:9092 "}

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokerList())
	assert.Empty(t, (&PubSubConfig{}).KafkaBrokerList())
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
