//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package member

import "context"

type VersionRepo interface {
	BumpMemberVersion(ctx context.Context, familyID string) (int64, error)
}
