package sqlite

// Timestamps are stored as epoch milliseconds.
// Parameters: ?1 type_identifier, ?2 window start ms, ?3 window end ms.

const (
	querySumStrictStart = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = ?1
		  AND start_ms >= ?2
		  AND start_ms < ?3
		GROUP BY unit
		ORDER BY unit
	`

	querySumStrictEnd = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = ?1
		  AND end_ms > ?2
		  AND end_ms <= ?3
		GROUP BY unit
		ORDER BY unit
	`

	querySumStrictBoth = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = ?1
		  AND start_ms >= ?2
		  AND start_ms < ?3
		  AND end_ms <= ?3
		GROUP BY unit
		ORDER BY unit
	`

	querySumOverlap = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = ?1
		  AND start_ms < ?3
		  AND end_ms > ?2
		GROUP BY unit
		ORDER BY unit
	`

	queryTableExists = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'quantity_samples'`
)
