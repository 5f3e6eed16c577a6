package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"taker": {
		"session:create",
		"session:view-own",
		"session:answer",
		"session:navigate",
		"session:submit",
		"result:view-own",
		"result:export",
		"result:import",
	},
	"admin": {
		"*", // everything
	},
}
