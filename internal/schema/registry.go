// Package schema declares the request rules of every endpoint. The registry
// is built once at start-up and only read afterwards.
package schema

import (
	"fmt"

	"jobboard-backend/pkg/validation"
)

// Endpoint identifies a route for schema lookup.
type Endpoint string

const (
	UsersSignUp         Endpoint = "users.signup"
	UsersSignIn         Endpoint = "users.signin"
	UsersSignOut        Endpoint = "users.signout"
	UsersList           Endpoint = "users.list"
	UsersGet            Endpoint = "users.get"
	UsersUpdateSelf     Endpoint = "users.update_self"
	UsersUpdate         Endpoint = "users.update"
	UsersChangePassword Endpoint = "users.change_password"
	UsersDeleteSelf     Endpoint = "users.delete_self"
	UsersDelete         Endpoint = "users.delete"

	CompaniesCreate Endpoint = "companies.create"
	CompaniesList   Endpoint = "companies.list"
	CompaniesSearch Endpoint = "companies.search"
	CompaniesGet    Endpoint = "companies.get"
	CompaniesUpdate Endpoint = "companies.update"
	CompaniesDelete Endpoint = "companies.delete"

	JobsCreate     Endpoint = "jobs.create"
	JobsList       Endpoint = "jobs.list"
	JobsForCompany Endpoint = "jobs.for_company"
	JobsGet        Endpoint = "jobs.get"
	JobsUpdate     Endpoint = "jobs.update"
	JobsDelete     Endpoint = "jobs.delete"
)

type Registry struct {
	sets map[Endpoint]validation.Set
}

// NewRegistry builds the schema set of every endpoint.
func NewRegistry() *Registry {
	sets := make(map[Endpoint]validation.Set)
	for _, group := range []map[Endpoint]validation.Set{userSets(), companySets(), jobSets()} {
		for ep, set := range group {
			sets[ep] = set
		}
	}
	return &Registry{sets: sets}
}

func (r *Registry) Lookup(ep Endpoint) (validation.Set, bool) {
	set, ok := r.sets[ep]
	return set, ok
}

// MustLookup panics when ep has no schema set. It is only called while the
// router is being built, so a missing entry stops start-up.
func (r *Registry) MustLookup(ep Endpoint) validation.Set {
	set, ok := r.Lookup(ep)
	if !ok {
		panic(fmt.Sprintf("schema: no schema set registered for endpoint %q", ep))
	}
	return set
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.sets)
}
