package utils

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// UnmarshalTask decodes a task payload into dest. An empty payload is
// treated as the zero value so parameterless tasks can enqueue nil bodies.
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	payload := t.Payload()
	if len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", t.Type(), err)
	}
	return nil
}
