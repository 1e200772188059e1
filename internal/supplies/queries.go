package supplies

const supplyColumns = `id, person_id, name, kind, suitable_for, notes, created_at, updated_at`

const (
	queryCreateSupply = `
		INSERT INTO care_supplies (person_id, name, kind, suitable_for, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + supplyColumns

	queryGetSupply = `
		SELECT ` + supplyColumns + `
		FROM care_supplies
		WHERE id = $1 AND person_id = $2
	`

	queryListSupplies = `
		SELECT ` + supplyColumns + `
		FROM care_supplies
		WHERE person_id = $1
		ORDER BY created_at DESC
	`

	queryUpdateSupply = `
		UPDATE care_supplies
		SET name = $3, kind = $4, suitable_for = $5, notes = $6, updated_at = NOW()
		WHERE id = $1 AND person_id = $2
		RETURNING ` + supplyColumns

	queryDeleteSupply = `
		DELETE FROM care_supplies
		WHERE id = $1 AND person_id = $2
	`

	// committed together with the mutation it accompanies
	queryTouchSuppliesClock = `
		UPDATE people
		SET supplies_last_modified = NOW(), updated_at = NOW()
		WHERE id = $1
	`
)
