package account

// Caller-facing messages. Login and refresh failures share one message
// each so responses never reveal whether an account exists.
const (
	MsgMissingSignupFields  = "Missing required fields"
	MsgEmailTaken           = "Email already registered"
	MsgInvalidRole          = "Invalid role"
	MsgMissingCredentials   = "Email and password required"
	MsgInvalidCredentials   = "Invalid email or password"
	MsgNotAuthenticated     = "Not authenticated"
	MsgUserNotFound         = "User not found"
	MsgRefreshRequired      = "Refresh token required"
	MsgInvalidRefresh       = "Invalid refresh token"
	MsgTenantCreated        = "Tenant account created successfully"
	MsgLandlordCreated      = "Landlord account created successfully. Please complete ID verification."
	MsgLoggedOut            = "Logged out successfully"
	MsgLandlordsOnly        = "Only landlords can access this resource"
	MsgProfileExists        = "Landlord profile already exists"
	MsgProfileNotFound      = "Landlord profile not found"
	MsgProfileCreated       = "Landlord profile created. Verification is pending."
	MsgMissingProfileFields = "ID type and ID number are required"
)
