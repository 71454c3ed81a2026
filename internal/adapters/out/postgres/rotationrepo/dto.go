// Package rotationrepo provides data transfer objects and mapping functions
// for agent rotation persistence. The system keeps a single rotation row; its
// agent pool lives in a child table ordered by position.
package rotationrepo

import (
	"github.com/google/uuid"

	"partsflow/internal/core/domain/model/kernel"
	"partsflow/internal/core/domain/model/rotation"
)

// AgentRotationDTO represents the database structure for the rotation aggregate.
type AgentRotationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Cursor  int       `gorm:"not null"`
	Version int       `gorm:"not null"`

	Agents []RotationAgentDTO `gorm:"foreignKey:RotationID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "agent_rotations".
func (AgentRotationDTO) TableName() string {
	return "agent_rotations"
}

// RotationAgentDTO is one agent slot in the rotation's ordered pool.
type RotationAgentDTO struct {
	RotationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	AgentID    uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming to use "rotation_agents".
func (RotationAgentDTO) TableName() string {
	return "rotation_agents"
}

// fromDomain converts a rotation aggregate to its database representation.
func fromDomain(aggregate *rotation.AgentRotation) AgentRotationDTO {
	rotationID := aggregate.ID().Bytes()

	agents := aggregate.Agents()
	agentDtos := make([]RotationAgentDTO, 0, len(agents))
	for position, agentID := range agents {
		agentDtos = append(agentDtos, RotationAgentDTO{
			RotationID: rotationID,
			Position:   position,
			AgentID:    agentID.Bytes(),
		})
	}

	return AgentRotationDTO{
		ID:      rotationID,
		Cursor:  aggregate.Cursor(),
		Version: aggregate.Version(),
		Agents:  agentDtos,
	}
}

// toDomain converts a database DTO to a rotation aggregate. Agent rows must
// arrive ordered by position.
func toDomain(dto AgentRotationDTO) (*rotation.AgentRotation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	agents := make([]kernel.UUID, 0, len(dto.Agents))
	for _, agentDto := range dto.Agents {
		agentID, agentErr := kernel.UUIDFromBytes(agentDto.AgentID[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agents = append(agents, agentID)
	}

	return rotation.RestoreAgentRotation(id, agents, dto.Cursor, dto.Version)
}
