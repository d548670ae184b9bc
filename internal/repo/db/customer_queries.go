package db

const customerCreateQ = `
INSERT INTO customers (customer_key, name, note)
VALUES ($1, $2, $3)
RETURNING id
`

const customerGetByKeyQ = `
SELECT id, customer_key, name, note, created_at
FROM customers
WHERE customer_key = $1
`

const customerGetByIDQ = `
SELECT id, customer_key, name, note, created_at
FROM customers
WHERE id = $1
`

const customerKeyByIDQ = `
SELECT customer_key
FROM customers
WHERE id = $1
`

// Cascade plan for a customer, executed in order inside one transaction:
// entitlements of its tokens, its tokens, its bindings, the row itself.
const customerCascadeEntitlementsQ = `
DELETE FROM apk_infos
WHERE token_value IN (SELECT token_value FROM tokens WHERE customer_key = $1)
`

const customerCascadeTokensQ = `
DELETE FROM tokens
WHERE customer_key = $1
`

const customerCascadeBindingsQ = `
DELETE FROM customer_devices
WHERE customer_id = $1
`

const customerDeleteQ = `
DELETE FROM customers
WHERE id = $1
`
