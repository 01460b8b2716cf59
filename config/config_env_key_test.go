package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"webApiKey": "",
			"projectId": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"cache": map[string]any{
			"bucketUrl": "",
		},
		"location": map[string]any{
			"minDisplacementMeters": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_WEBAPIKEY", want: "firebase.webApiKey"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CACHE_BUCKETURL", want: "cache.bucketUrl"},
		{envKey: "LOCATION_MINDISPLACEMENTMETERS", want: "location.minDisplacementMeters"},
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
