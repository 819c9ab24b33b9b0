package cache

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// PredictionKeyPrefix namespaces every cached prediction.
const PredictionKeyPrefix = "prediction"

// PredictionKey is the cache key of a price for a feature vector fingerprint.
func PredictionKey(propertyType, fingerprint string) string {
	return fmt.Sprintf("%s:%s:%s", PredictionKeyPrefix, propertyType, fingerprint)
}

// FeatureFingerprint hashes the JSON form of a feature vector. Equal vectors
// marshal to equal bytes, so they share a fingerprint.
func FeatureFingerprint(features json.Marshaler) (string, error) {
	data, err := features.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal features: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
