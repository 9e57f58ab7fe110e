//go:build unit || e2e

package testutil

// Field returns a mutation for DtoMap. A nil value removes the key, which
// is how tests drop required fields from otherwise valid payloads.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
