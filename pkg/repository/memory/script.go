package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/repository"
)

type scriptRepository struct {
	mu       sync.RWMutex
	scripts  map[model.ScriptID]*model.Script
	versions map[model.ScriptID][]*model.ScriptVersion
}

func newScriptRepository() *scriptRepository {
	return &scriptRepository{
		scripts:  make(map[model.ScriptID]*model.Script),
		versions: make(map[model.ScriptID][]*model.ScriptVersion),
	}
}

func copyScript(s *model.Script) *model.Script {
	c := *s
	c.Tags = append([]string(nil), s.Tags...)
	return &c
}

func copyVersion(v *model.ScriptVersion) *model.ScriptVersion {
	c := *v
	return &c
}

func (r *scriptRepository) Create(_ context.Context, script *model.Script) (*model.Script, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if script.ID == "" {
		script.ID = model.NewScriptID()
	}
	script.Tone = script.Tone.Normalize()
	script.CreatedAt = now
	script.UpdatedAt = now

	r.scripts[script.ID] = copyScript(script)
	return script, nil
}

func (r *scriptRepository) Get(_ context.Context, id model.ScriptID) (*model.Script, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	script, ok := r.scripts[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "script not found", goerr.V("id", id))
	}
	return copyScript(script), nil
}

func (r *scriptRepository) AddVersion(_ context.Context, version *model.ScriptVersion) (*model.ScriptVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scripts[version.ScriptID]; !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "script not found", goerr.V("id", version.ScriptID))
	}

	version.ID = uuid.New().String()
	version.CreatedAt = time.Now().UTC()
	r.versions[version.ScriptID] = append(r.versions[version.ScriptID], copyVersion(version))
	return version, nil
}

func (r *scriptRepository) ListVersions(_ context.Context, scriptID model.ScriptID) ([]*model.ScriptVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var versions []*model.ScriptVersion
	for _, v := range r.versions[scriptID] {
		versions = append(versions, copyVersion(v))
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].VersionNumber < versions[j].VersionNumber
	})
	return versions, nil
}
