package utils

// SafeGet walks a nested mapping one key at a time and returns the value
// found at the end of the key path. It returns nil as soon as a key is
// absent or the current value is not a mapping, so callers can probe
// loosely structured documents without guarding every level themselves.
func SafeGet(document map[string]any, keys ...string) any {
	var current any = document

	for _, key := range keys {
		mapping, ok := current.(map[string]any)
		if !ok {
			return nil
		}

		value, ok := mapping[key]
		if !ok {
			return nil
		}

		current = value
	}

	return current
}
