package db

const deviceCreateQ = `
INSERT INTO devices (device_code, model)
VALUES ($1, $2)
RETURNING id
`

const deviceGetByCodeQ = `
SELECT id, device_code, model, created_at
FROM devices
WHERE device_code = $1
`

const deviceGetByIDQ = `
SELECT id, device_code, model, created_at
FROM devices
WHERE id = $1
`

const deviceCodeByIDQ = `
SELECT device_code
FROM devices
WHERE id = $1
`

// Cascade plan for a device: its bindings, its entitlements, the row itself.
const deviceCascadeBindingsQ = `
DELETE FROM customer_devices
WHERE device_id = $1
`

const deviceCascadeEntitlementsQ = `
DELETE FROM apk_infos
WHERE device_code = $1
`

const deviceDeleteQ = `
DELETE FROM devices
WHERE id = $1
`
