package queries

const (
	ConstraintPhoneLinksActiveUser  = "uq_phone_links_active_user"
	ConstraintPhoneLinksActiveCode  = "uq_phone_links_active_code"
	ConstraintPhoneLinksActivePhone = "uq_phone_links_active_phone"
)

const phoneLinkColumns = `id, user_id, auth_code, phone_number_linked, linked_at, is_active, is_deleted, deleted_at, created_at`

const (
	QueryFindActivePhoneLinkByUserID = `
		SELECT ` + phoneLinkColumns + `
		FROM phone_links
		WHERE user_id = $1 AND is_active = TRUE AND is_deleted = FALSE
		ORDER BY created_at DESC
		LIMIT 1`

	QueryFindLinkedPhoneLinkByUserID = `
		SELECT ` + phoneLinkColumns + `
		FROM phone_links
		WHERE user_id = $1 AND is_active = TRUE AND is_deleted = FALSE AND phone_number_linked IS NOT NULL
		ORDER BY created_at DESC
		LIMIT 1`

	QueryFindActivePhoneLinkByAuthCode = `
		SELECT ` + phoneLinkColumns + `
		FROM phone_links
		WHERE auth_code = $1 AND is_active = TRUE AND is_deleted = FALSE
		LIMIT 1`

	QueryFindActivePhoneLinksByPhoneNumber = `
		SELECT ` + phoneLinkColumns + `
		FROM phone_links
		WHERE phone_number_linked = $1 AND is_active = TRUE AND is_deleted = FALSE
		ORDER BY created_at DESC`

	QueryInsertPhoneLink = `
		INSERT INTO phone_links (id, user_id, auth_code, is_active, is_deleted, created_at)
		VALUES ($1, $2, $3, TRUE, FALSE, $4)
		RETURNING ` + phoneLinkColumns

	// The WHERE clause is the compare-and-set: a code is consumed at most once.
	QueryLinkPhoneNumber = `
		UPDATE phone_links
		SET phone_number_linked = $1, linked_at = $2
		WHERE id = $3
			AND auth_code = $4
			AND is_active = TRUE
			AND is_deleted = FALSE
			AND phone_number_linked IS NULL
			AND created_at > $5
		RETURNING ` + phoneLinkColumns

	QueryUnlinkPhoneNumber = `
		UPDATE phone_links
		SET phone_number_linked = NULL, linked_at = NULL
		WHERE id = $1 AND is_active = TRUE AND is_deleted = FALSE`

	QueryDeactivatePhoneLinkByID = `
		UPDATE phone_links
		SET is_active = FALSE, is_deleted = TRUE, deleted_at = $2
		WHERE id = $1`

	QueryDeactivatePhoneLinksByUserID = `
		UPDATE phone_links
		SET is_active = FALSE, is_deleted = TRUE, deleted_at = $2
		WHERE user_id = $1 AND is_active = TRUE`

	QuerySoftDeleteExpiredPhoneLinks = `
		UPDATE phone_links
		SET is_active = FALSE, is_deleted = TRUE, deleted_at = $1
		WHERE is_active = TRUE AND is_deleted = FALSE AND created_at < $2
		RETURNING id, auth_code, created_at`
)
