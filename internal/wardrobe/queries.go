package wardrobe

const itemColumns = `id, person_id, name, category, color, brand, status, photo_url, created_at, updated_at`

const (
	queryCreateItem = `
		INSERT INTO wardrobe_items (person_id, name, category, color, brand, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itemColumns

	queryGetItem = `
		SELECT ` + itemColumns + `
		FROM wardrobe_items
		WHERE id = $1 AND person_id = $2
	`

	queryListItems = `
		SELECT ` + itemColumns + `
		FROM wardrobe_items
		WHERE person_id = $1
		ORDER BY created_at DESC
	`

	queryListActiveItems = `
		SELECT ` + itemColumns + `
		FROM wardrobe_items
		WHERE person_id = $1 AND status = 'active'
		ORDER BY created_at DESC
		LIMIT $2
	`

	queryUpdateItem = `
		UPDATE wardrobe_items
		SET name = $3, category = $4, color = $5, brand = $6, status = $7,
			photo_url = $8, updated_at = NOW()
		WHERE id = $1 AND person_id = $2
		RETURNING ` + itemColumns

	queryDeleteItem = `
		DELETE FROM wardrobe_items
		WHERE id = $1 AND person_id = $2
	`

	// committed together with the mutation it accompanies so no reader can
	// observe a changed wardrobe with a stale clock
	queryTouchWardrobeClock = `
		UPDATE people
		SET wardrobe_last_modified = NOW(), updated_at = NOW()
		WHERE id = $1
	`
)
