package utils

// PageCount returns how many pages of size limit cover total rows. A limit
// below one is treated as one so the arithmetic never divides by zero.
func PageCount(total int64, limit int) int {
	if limit < 1 {
		limit = 1
	}
	return (int(total) + limit - 1) / limit
}
