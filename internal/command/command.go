package command

// MaxNameLength is the longest task name accepted, in characters.
const MaxNameLength = 50

// CreateCommand is a validated request to create a task.
type CreateCommand struct {
	Name string
}

// UpdateCommand is a validated request to replace a task's name and status.
type UpdateCommand struct {
	ID     int
	Name   string
	Status bool
}

// ParseCreate validates raw into a CreateCommand.
// Keys other than "name" are ignored.
func ParseCreate(raw map[string]any) (CreateCommand, error) {
	name, err := nameField(raw)
	if err != nil {
		return CreateCommand{}, err
	}
	return CreateCommand{Name: name}, nil
}

// ParseUpdate validates raw into an UpdateCommand, checking id, name and status
// in that order.
func ParseUpdate(raw map[string]any) (UpdateCommand, error) {
	id, err := intField(raw, fieldID)
	if err != nil {
		return UpdateCommand{}, err
	}
	if err := checkConstraint(fieldID, id, idTag); err != nil {
		return UpdateCommand{}, err
	}

	name, err := nameField(raw)
	if err != nil {
		return UpdateCommand{}, err
	}

	status, err := boolField(raw, fieldStatus)
	if err != nil {
		return UpdateCommand{}, err
	}

	return UpdateCommand{ID: id, Name: name, Status: status}, nil
}

func nameField(raw map[string]any) (string, error) {
	name, err := stringField(raw, fieldName)
	if err != nil {
		return "", err
	}
	if err := checkConstraint(fieldName, name, nameTag); err != nil {
		return "", err
	}
	return name, nil
}
