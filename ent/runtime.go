// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jervis-ai/jervis-core/ent/chatmessage"
	"github.com/jervis-ai/jervis-core/ent/chatsummary"
	"github.com/jervis-ai/jervis-core/ent/extractiontask"
	"github.com/jervis-ai/jervis-core/ent/graphcheckpoint"
	"github.com/jervis-ai/jervis-core/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	chatsummaryFields := schema.ChatSummary{}.Fields()
	_ = chatsummaryFields
	// chatsummaryDescIsCheckpoint is the schema descriptor for is_checkpoint field.
	chatsummaryDescIsCheckpoint := chatsummaryFields[7].Descriptor()
	// chatsummary.DefaultIsCheckpoint holds the default value on creation for the is_checkpoint field.
	chatsummary.DefaultIsCheckpoint = chatsummaryDescIsCheckpoint.Default.(bool)
	// chatsummaryDescCreatedAt is the schema descriptor for created_at field.
	chatsummaryDescCreatedAt := chatsummaryFields[10].Descriptor()
	// chatsummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsummary.DefaultCreatedAt = chatsummaryDescCreatedAt.Default.(func() time.Time)
	extractiontaskFields := schema.ExtractionTask{}.Fields()
	_ = extractiontaskFields
	// extractiontaskDescAttempts is the schema descriptor for attempts field.
	extractiontaskDescAttempts := extractiontaskFields[8].Descriptor()
	// extractiontask.DefaultAttempts holds the default value on creation for the attempts field.
	extractiontask.DefaultAttempts = extractiontaskDescAttempts.Default.(int)
	// extractiontaskDescCreatedAt is the schema descriptor for created_at field.
	extractiontaskDescCreatedAt := extractiontaskFields[12].Descriptor()
	// extractiontask.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractiontask.DefaultCreatedAt = extractiontaskDescCreatedAt.Default.(func() time.Time)
	graphcheckpointFields := schema.GraphCheckpoint{}.Fields()
	_ = graphcheckpointFields
	// graphcheckpointDescCreatedAt is the schema descriptor for created_at field.
	graphcheckpointDescCreatedAt := graphcheckpointFields[6].Descriptor()
	// graphcheckpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphcheckpoint.DefaultCreatedAt = graphcheckpointDescCreatedAt.Default.(func() time.Time)
	// graphcheckpointDescUpdatedAt is the schema descriptor for updated_at field.
	graphcheckpointDescUpdatedAt := graphcheckpointFields[7].Descriptor()
	// graphcheckpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	graphcheckpoint.DefaultUpdatedAt = graphcheckpointDescUpdatedAt.Default.(func() time.Time)
	// graphcheckpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	graphcheckpoint.UpdateDefaultUpdatedAt = graphcheckpointDescUpdatedAt.UpdateDefault.(func() time.Time)
}
