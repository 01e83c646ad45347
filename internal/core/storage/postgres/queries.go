package postgres

// SQL queries for quantity sample aggregation.
// Every query takes ($1 type_identifier, $2 window start, $3 window end)
// and returns (unit, sum) rows ordered by unit.

const (
	// querySumStrictStart selects samples starting inside [start, end).
	querySumStrictStart = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = $1
		  AND start_date >= $2
		  AND start_date < $3
		GROUP BY unit
		ORDER BY unit
	`

	// querySumStrictEnd selects samples ending inside (start, end].
	querySumStrictEnd = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = $1
		  AND end_date > $2
		  AND end_date <= $3
		GROUP BY unit
		ORDER BY unit
	`

	// querySumStrictBoth selects samples fully contained in [start, end].
	querySumStrictBoth = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = $1
		  AND start_date >= $2
		  AND start_date < $3
		  AND end_date <= $3
		GROUP BY unit
		ORDER BY unit
	`

	// querySumOverlap selects samples overlapping [start, end).
	querySumOverlap = `
		SELECT unit, SUM(value)
		FROM quantity_samples
		WHERE type_identifier = $1
		  AND start_date < $3
		  AND end_date > $2
		GROUP BY unit
		ORDER BY unit
	`

	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'quantity_samples'
		)
	`
)
