// Package genealogy deriva a floresta de indicações dos contatos
// (referred_by como ponteiro de pai) e estatísticas agregadas.
package genealogy

import "github.com/google/uuid"

// Teto de saltos ao subir a cadeia: tolera ciclo em dado corrompido
// sem laço infinito. Ciclo de verdade é bug de integridade, não entrada válida.
const MaxDepth = 10

type Node struct {
	ID         uuid.UUID
	ReferredBy *uuid.UUID
}

type NodeReport struct {
	ID      uuid.UUID  `json:"id"`
	Depth   int        `json:"depth"`
	RootID  uuid.UUID  `json:"root_id"`
	Parent  *uuid.UUID `json:"parent,omitempty"`
	IsRoot  bool       `json:"is_root"`
	Standby bool       `json:"standby"`
}

type Report struct {
	Nodes        []NodeReport `json:"nodes"`
	Total        int          `json:"total"`
	Connected    int          `json:"connected"`
	MaxDepth     int          `json:"max_depth"`
	StandbyCount int          `json:"standby_count"`
}

// Build monta o relatório sem mutar a entrada.
// depth = saltos até a raiz (raiz = 0); standby = sem pai e sem filhos.
func Build(nodes []Node) Report {
	parents := make(map[uuid.UUID]*uuid.UUID, len(nodes))
	hasChildren := make(map[uuid.UUID]bool, len(nodes))
	for _, n := range nodes {
		parents[n.ID] = n.ReferredBy
		if n.ReferredBy != nil {
			hasChildren[*n.ReferredBy] = true
		}
	}

	report := Report{
		Nodes: make([]NodeReport, 0, len(nodes)),
		Total: len(nodes),
	}

	for _, n := range nodes {
		depth, rootID := walkToRoot(n.ID, parents)
		isRoot := depth == 0
		standby := isRoot && !hasChildren[n.ID]

		report.Nodes = append(report.Nodes, NodeReport{
			ID:      n.ID,
			Depth:   depth,
			RootID:  rootID,
			Parent:  n.ReferredBy,
			IsRoot:  isRoot,
			Standby: standby,
		})

		if standby {
			report.StandbyCount++
		} else {
			report.Connected++
		}
		if depth > report.MaxDepth {
			report.MaxDepth = depth
		}
	}

	return report
}

// walkToRoot sobe a cadeia de pais até a raiz (ou até MaxDepth).
// Pai apontando para fora do conjunto conta como raiz do ponto de vista local.
func walkToRoot(id uuid.UUID, parents map[uuid.UUID]*uuid.UUID) (depth int, rootID uuid.UUID) {
	current := id
	for depth = 0; depth < MaxDepth; depth++ {
		parent, known := parents[current]
		if !known || parent == nil {
			return depth, current
		}
		current = *parent
	}
	return MaxDepth, current
}
