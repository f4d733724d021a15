package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject provides the default tree behavior for game objects. Children
// keep their insertion order for updates and draws.
type BaseObject struct {
	id       string
	parent   GameObject
	order    []string
	children map[string]GameObject
}

func NewBaseObject(id string) *BaseObject {
	return &BaseObject{
		id:       id,
		children: make(map[string]GameObject),
	}
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children[id]; ok {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	o.children[id] = child
	o.order = append(o.order, id)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child, ok := o.children[id]
	if !ok {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	delete(o.children, id)
	for i, childID := range o.order {
		if childID == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children[id]
}

func (o *BaseObject) GetChildren() []GameObject {
	children := make([]GameObject, 0, len(o.order))
	for _, id := range o.order {
		children = append(children, o.children[id])
	}
	return children
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {
}
