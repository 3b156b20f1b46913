// Package mocks provides shared mock implementations for testing.
//
// Mocks use function fields for custom behavior, fall back to default return
// values, and record calls for verification:
//
//	svc := &mocks.MockTaskService{
//	    CreateTaskFn: func(ctx context.Context, name string) (*domain.Task, error) {
//	        return nil, errors.New("boom")
//	    },
//	}
package mocks
