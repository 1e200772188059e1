package people

const personColumns = `id, email, provider, provider_id, name, avatar_url,
		subscription_tier, subscription_status, subscription_end_date,
		shoe_care_usage, usage_reset_date,
		wardrobe_last_modified, supplies_last_modified,
		created_at, updated_at`

const (
	queryFindOrCreateByProvider = `
		INSERT INTO people (provider, provider_id, email, name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING ` + personColumns

	queryFindByID = `
		SELECT ` + personColumns + `
		FROM people
		WHERE id = $1
	`

	queryUpdateProfile = `
		UPDATE people
		SET name = $1, avatar_url = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + personColumns

	queryResetUsage = `
		UPDATE people
		SET shoe_care_usage = 0, usage_reset_date = $2, updated_at = NOW()
		WHERE id = $1
	`

	queryIncrementUsage = `
		UPDATE people
		SET shoe_care_usage = shoe_care_usage + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING shoe_care_usage
	`

	queryUpdateSubscription = `
		UPDATE people
		SET subscription_tier = $2, subscription_status = $3,
			subscription_end_date = $4, updated_at = NOW()
		WHERE id = $1
	`
)
