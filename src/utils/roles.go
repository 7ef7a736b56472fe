package utils

import "Backend-CorpsConnect/src/models"

// RolePermissions is the capability set a role resolves to at
// authorization time. Display labels stay out of the checks.
type RolePermissions struct {
	CanPostJobs           bool
	CanApplyToJobs        bool
	CanManageApplications bool
	CanManageCourses      bool
	CanEnrollCourses      bool
	CanViewAnalytics      bool
	CanManageUsers        bool
	CanAccessAdminPanel   bool
}

func GetRolePermissions(role string) RolePermissions {
	switch role {
	case models.RoleCorpsMember:
		return RolePermissions{
			CanApplyToJobs:   true,
			CanEnrollCourses: true,
			CanViewAnalytics: true,
		}
	case models.RoleEmployer:
		return RolePermissions{
			CanPostJobs:           true,
			CanManageApplications: true,
			CanViewAnalytics:      true,
		}
	case models.RoleNitda:
		return RolePermissions{
			CanPostJobs:           true,
			CanManageApplications: true,
			CanManageCourses:      true,
			CanViewAnalytics:      true,
			CanManageUsers:        true,
			CanAccessAdminPanel:   true,
		}
	default:
		return RolePermissions{}
	}
}

func HasPermission(role string, check func(RolePermissions) bool) bool {
	return check(GetRolePermissions(role))
}
