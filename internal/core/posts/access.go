package posts

import (
	"Agora/internal/core/users"
)

// grant describes which relationships entitle a role to modify a post.
type grant struct {
	author    bool // actor wrote the post
	moderator bool // actor moderates the post's thread
	any       bool // no relationship required
}

// updateGrants is the full authorization policy for post updates, written as
// a table so the three-tier ladder stays auditable: each tier is a strict
// superset of the one below it. A role missing from the table gets nothing.
var updateGrants = map[users.Role]grant{
	users.RoleMember:    {author: true},
	users.RoleModerator: {author: true, moderator: true},
	users.RoleAdmin:     {author: true, moderator: true, any: true},
}

// canUpdate decides whether an actor with the given role and relationships
// to the post may modify it. Pure function of its inputs.
func canUpdate(role users.Role, isAuthor, moderatesThread bool) bool {
	g, ok := updateGrants[role]
	if !ok {
		return false
	}
	return g.any || (g.author && isAuthor) || (g.moderator && moderatesThread)
}
