package db

const bindingCreateQ = `
INSERT INTO customer_devices (customer_id, device_id)
VALUES ($1, $2)
`

const bindingDeleteQ = `
DELETE FROM customer_devices
WHERE customer_id = $1 AND device_id = $2
`

const bindingExistsQ = `
SELECT EXISTS (
	SELECT 1 FROM customer_devices
	WHERE customer_id = $1 AND device_id = $2
)
`

const bindingDevicesOfCustomerQ = `
SELECT d.id, d.device_code, d.model, d.created_at
FROM devices d
JOIN customer_devices cd ON cd.device_id = d.id
WHERE cd.customer_id = $1
ORDER BY cd.created_at
`

const bindingCustomersOfDeviceQ = `
SELECT c.id, c.customer_key, c.name, c.note, c.created_at
FROM customers c
JOIN customer_devices cd ON cd.customer_id = c.id
WHERE cd.device_id = $1
ORDER BY cd.created_at
`
