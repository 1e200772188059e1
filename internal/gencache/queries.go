package gencache

const (
	queryGetEntry = `
		SELECT payload, generated_against, click_count, updated_at
		FROM ai_generations
		WHERE person_id = $1 AND subject_id = $2 AND variant = $3
	`

	// payload and generated_against are written in one statement so a
	// reader can never observe one without the other. click_count resets
	// on every successful regeneration, never otherwise
	queryPutEntry = `
		INSERT INTO ai_generations (person_id, subject_id, variant, payload, generated_against, click_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, NOW())
		ON CONFLICT (person_id, subject_id, variant)
		DO UPDATE SET
			payload = EXCLUDED.payload,
			generated_against = EXCLUDED.generated_against,
			click_count = 0,
			updated_at = NOW()
		RETURNING payload, generated_against, click_count, updated_at
	`

	queryRegisterClick = `
		UPDATE ai_generations
		SET click_count = click_count + 1
		WHERE person_id = $1 AND subject_id = $2 AND variant = $3
		RETURNING click_count
	`
)
