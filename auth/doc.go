// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the admin endpoints.

# Admin Keys

The admin secret is configured once per deployment (ADMIN_KEY). Every
lifecycle transition carries a key in its request body, which is checked with:

	err := auth.ValidateAdminKey(req.Key, cfg.AdminKey)

The comparison runs in constant time over SHA-256 digests of both values.
An empty key never validates, even against an empty secret.
*/
package auth
