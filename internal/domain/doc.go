// Package domain contains the value types shared by the bankcore packages:
// Money, typed errors and workspace configuration.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or the filesystem. Infra/adapters map into/from these types.
package domain
