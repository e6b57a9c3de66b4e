package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lensworks/crewdesk/pkg/domain/model"
)

type scriptRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newScriptRepository(client *firestore.Client) *scriptRepository {
	return &scriptRepository{client: client}
}

func (r *scriptRepository) scriptsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_scripts"
	}
	return "scripts"
}

const versionsCollection = "versions"

func (r *scriptRepository) Create(ctx context.Context, script *model.Script) (*model.Script, error) {
	now := time.Now().UTC()
	if script.ID == "" {
		script.ID = model.NewScriptID()
	}
	script.Tone = script.Tone.Normalize()
	script.CreatedAt = now
	script.UpdatedAt = now

	docRef := r.client.Collection(r.scriptsCollection()).Doc(script.ID.String())
	if _, err := docRef.Set(ctx, script); err != nil {
		return nil, goerr.Wrap(err, "failed to create script", goerr.V("id", script.ID))
	}

	return script, nil
}

func (r *scriptRepository) Get(ctx context.Context, id model.ScriptID) (*model.Script, error) {
	docSnap, err := r.client.Collection(r.scriptsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "script not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get script", goerr.V("id", id))
	}

	var script model.Script
	if err := docSnap.DataTo(&script); err != nil {
		return nil, goerr.Wrap(err, "failed to decode script", goerr.V("id", id))
	}
	script.ID = id

	return &script, nil
}

func (r *scriptRepository) AddVersion(ctx context.Context, version *model.ScriptVersion) (*model.ScriptVersion, error) {
	scriptRef := r.client.Collection(r.scriptsCollection()).Doc(version.ScriptID.String())

	if _, err := scriptRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "script not found", goerr.V("id", version.ScriptID))
		}
		return nil, goerr.Wrap(err, "failed to check script existence", goerr.V("id", version.ScriptID))
	}

	version.CreatedAt = time.Now().UTC()

	ref := scriptRef.Collection(versionsCollection).NewDoc()
	if _, err := ref.Set(ctx, version); err != nil {
		return nil, goerr.Wrap(err, "failed to add script version", goerr.V("scriptID", version.ScriptID))
	}
	version.ID = ref.ID

	return version, nil
}

func (r *scriptRepository) ListVersions(ctx context.Context, scriptID model.ScriptID) ([]*model.ScriptVersion, error) {
	iter := r.client.Collection(r.scriptsCollection()).
		Doc(scriptID.String()).
		Collection(versionsCollection).
		OrderBy("version_number", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var versions []*model.ScriptVersion
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate script versions")
		}

		var version model.ScriptVersion
		if err := docSnap.DataTo(&version); err != nil {
			return nil, goerr.Wrap(err, "failed to decode script version", goerr.V("doc_id", docSnap.Ref.ID))
		}
		version.ID = docSnap.Ref.ID

		versions = append(versions, &version)
	}

	return versions, nil
}
