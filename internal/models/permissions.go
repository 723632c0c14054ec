package models

// Permission constants
const (
	// Ledger permissions
	PermissionLedgerRead  = "ledger:read"
	PermissionLedgerWrite = "ledger:write"

	// Contest permissions
	PermissionContestJoin  = "contest:join"
	PermissionContestClose = "contest:close"

	// Payment permissions
	PermissionPaymentConfirm = "payment:confirm"

	// Withdrawal permissions
	PermissionWithdrawalRequest = "withdrawal:request"
	PermissionWithdrawalReverse = "withdrawal:reverse"

	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"
)

// GetDefaultPermissions returns default permissions based on role.
// Capability checks go through HasPermission, never through ad-hoc
// comparisons on account fields.
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionLedgerRead,
			PermissionLedgerWrite,
			PermissionContestJoin,
			PermissionContestClose,
			PermissionPaymentConfirm,
			PermissionWithdrawalRequest,
			PermissionWithdrawalReverse,
		}
	case RoleUser:
		return []string{
			PermissionLedgerRead,
			PermissionContestJoin,
			PermissionWithdrawalRequest,
		}
	default:
		return []string{}
	}
}

// HasPermission reports whether the account's role grants the permission.
func (a *Account) HasPermission(permission string) bool {
	for _, p := range GetDefaultPermissions(a.Role) {
		if p == permission {
			return true
		}
	}
	return false
}
