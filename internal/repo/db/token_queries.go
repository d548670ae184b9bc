package db

const tokenCreateQ = `
INSERT INTO tokens (token_value, customer_key, token_init_date, token_expiry)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const tokenGetByValueQ = `
SELECT id, token_value, customer_key, token_init_date, token_expiry
FROM tokens
WHERE token_value = $1
`

const tokenListByCustomerQ = `
SELECT id, token_value, customer_key, token_init_date, token_expiry
FROM tokens
WHERE customer_key = $1
ORDER BY token_init_date DESC
`

// Cascade plan for a token: its entitlement rows, then the row itself.
// The owning customer is never touched.
const tokenCascadeEntitlementsQ = `
DELETE FROM apk_infos
WHERE token_value = $1
`

const tokenDeleteQ = `
DELETE FROM tokens
WHERE token_value = $1
`
