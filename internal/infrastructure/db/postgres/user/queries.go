package user

const (
	userColumns = `id, uuid, email, first_name, last_name, birth_date, address, phone, created_at, updated_at, deleted_at`

	SelectUsers = `
		SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
	`
	SelectUsersByBirthDate = `
		SELECT ` + userColumns + `
		FROM users
		WHERE birth_date BETWEEN $1 AND $2 AND deleted_at IS NULL
		ORDER BY id
	`
	SelectUserByUUID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	ExistsUserByEmail = `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)
	`
	InsertUser = `
		INSERT INTO users (email, first_name, last_name, birth_date, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	UpdateUserByUUID = `
		UPDATE users
		SET email = $1,
		    first_name = $2,
		    last_name = $3,
		    birth_date = $4,
		    address = $5,
		    phone = $6,
		    updated_at = now()
		WHERE uuid = $7 AND deleted_at IS NULL
		RETURNING ` + userColumns
	SoftDeleteUserByUUID = `
		UPDATE users
		SET deleted_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns
)
