// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./snapshot.go -destination=../mocks/mock_snapshot_repository.go -package=mocks SnapshotRepositoryIface
