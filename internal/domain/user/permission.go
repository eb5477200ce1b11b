package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCheckIn Permission = "attendance.check_in"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveDecide  Permission = "leave.decide"

	// Administration
	PermissionUserManage    Permission = "user.manage"
	PermissionShiftManage   Permission = "shift.manage"
	PermissionAbsenteeScan  Permission = "absentee.scan"
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleWorker: {
		PermissionAttendanceCheckIn,
		PermissionLeaveCreate,
	},
	RoleAdmin: {
		// Admins do not check in themselves
		PermissionAttendanceViewAll,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveDecide,
		PermissionUserManage,
		PermissionShiftManage,
		PermissionAbsenteeScan,
		PermissionDashboardView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
