package entities

// Synchronizer mappings: pure, total functions that keep the tenant and
// property status fields consistent with a contract's status. Callers apply
// the result and persist; nothing here touches storage.

// TenantStatusFor maps a contract status onto the tenant's contract_status.
func TenantStatusFor(s ContractStatus) TenantContractStatus {
	switch s {
	case ContractStatusUnsigned, ContractStatusInProcess:
		return TenantContractInProcess
	case ContractStatusSigned, ContractStatusActive, ContractStatusExpiringSoon:
		return TenantContractActive
	case ContractStatusFinished:
		return TenantContractFinished
	default:
		return TenantContractNone
	}
}

// PropertyStatusFor maps a contract status onto the property's status.
// The second return is false when the property must be left unchanged
// (a manual maintenance flag, for example, survives unknown inputs).
func PropertyStatusFor(s ContractStatus) (PropertyStatus, bool) {
	switch s {
	case ContractStatusFinished:
		return PropertyStatusAvailable, true
	case ContractStatusUnsigned, ContractStatusInProcess:
		return PropertyStatusReserved, true
	case ContractStatusSigned, ContractStatusActive, ContractStatusExpiringSoon:
		return PropertyStatusOccupied, true
	default:
		return "", false
	}
}
