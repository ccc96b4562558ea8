package store

// Sanitize returns a copy of a JSON-like tree (maps, slices, scalars) with
// every nil-valued leaf removed. The realtime database rejects write payloads
// containing them, while the mirror's plain JSON encoding tolerates them.
// Pure and idempotent; structure is otherwise preserved.
func Sanitize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, val := range v {
			if val == nil {
				continue
			}
			if cleaned := Sanitize(val); cleaned != nil {
				out[key] = cleaned
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, val := range v {
			if val == nil {
				continue
			}
			out = append(out, Sanitize(val))
		}
		return out
	default:
		return v
	}
}
