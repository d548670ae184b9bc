package db

// Resolve-or-create in a single statement. The no-op DO UPDATE makes the
// statement return the surviving row on conflict, so concurrent resolvers
// for the same (device, token, package, version) all observe exactly one
// persisted row and the loser of a race receives the winner's record.
const entitlementUpsertQ = `
INSERT INTO apk_infos (apk_name, apk_path, apk_ver_number, device_code, token_value)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (device_code, token_value, apk_name, apk_ver_number)
DO UPDATE SET apk_name = EXCLUDED.apk_name
RETURNING id, apk_name, apk_path, apk_ver_number, device_code, token_value, created_at
`

const entitlementListByDeviceQ = `
SELECT id, apk_name, apk_path, apk_ver_number, device_code, token_value, created_at
FROM apk_infos
WHERE device_code = $1
ORDER BY created_at DESC
`
