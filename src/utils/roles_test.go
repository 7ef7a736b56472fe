package utils

import (
	"testing"

	"Backend-CorpsConnect/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCorpsMemberPermissions(t *testing.T) {
	p := GetRolePermissions(models.RoleCorpsMember)
	assert.True(t, p.CanApplyToJobs)
	assert.True(t, p.CanEnrollCourses)
	assert.False(t, p.CanPostJobs)
	assert.False(t, p.CanAccessAdminPanel)
}

func TestEmployerPermissions(t *testing.T) {
	p := GetRolePermissions(models.RoleEmployer)
	assert.True(t, p.CanPostJobs)
	assert.True(t, p.CanManageApplications)
	assert.False(t, p.CanApplyToJobs)
	assert.False(t, p.CanManageCourses)
	assert.False(t, p.CanAccessAdminPanel)
}

func TestNitdaPermissions(t *testing.T) {
	p := GetRolePermissions(models.RoleNitda)
	assert.True(t, p.CanPostJobs)
	assert.True(t, p.CanManageCourses)
	assert.True(t, p.CanManageUsers)
	assert.True(t, p.CanAccessAdminPanel)

	// Staff post and review jobs; only corps members sit on the
	// applicant side.
	assert.False(t, p.CanApplyToJobs)
	assert.False(t, p.CanEnrollCourses)
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	p := GetRolePermissions("superuser")
	assert.Equal(t, RolePermissions{}, p)

	assert.False(t, HasPermission("superuser", func(p RolePermissions) bool { return p.CanApplyToJobs }))
}
