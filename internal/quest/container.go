package quest

import "gorm.io/gorm"

type QuestContainer struct {
	Repo    Repository
	Service Service
}

// NewQuestContainer wires the engine to the database when db is set and to
// plain save files otherwise.
func NewQuestContainer(db *gorm.DB, replayOnLoad bool) *QuestContainer {
	var repo Repository
	if db != nil {
		repo = NewGormRepository(db)
	} else {
		repo = NewFileRepository()
	}
	service := NewService(repo, replayOnLoad)

	return &QuestContainer{
		Repo:    repo,
		Service: service,
	}
}
