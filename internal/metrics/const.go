package metrics

const Namespace = "oracle_dashboard"

const (
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

const (
	CacheOperationTypeGet    = "get"
	CacheOperationTypeSet    = "set"
	CacheOperationTypeDelete = "delete"
)

const (
	GuardOutcomeAllow           = "allow"
	GuardOutcomeRedirectLogin   = "redirect_login"
	GuardOutcomeRedirectLanding = "redirect_landing"
	GuardOutcomeBypass          = "bypass"
)

const (
	NavGrantEventIssued   = "issued"
	NavGrantEventConsumed = "consumed"
	NavGrantEventExpired  = "expired"
)

const (
	AuthEventSignIn   = "sign_in"
	AuthEventSignOut  = "sign_out"
	AuthEventRegister = "register"
	AuthEventSSO      = "sso"
)

const (
	AuthResultSuccess  = "success"
	AuthResultRejected = "rejected"
	AuthResultError    = "error"
)
