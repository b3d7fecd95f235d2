package data

// NormalizeInt64 converts various numeric types to int64
// Returns the int64 value and true if successful, 0 and false otherwise
func NormalizeInt64(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// ToFloat64 converts any of the numeric types a cell may hold to float64
// Returns the float64 value and true if successful, 0 and false otherwise
func ToFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
