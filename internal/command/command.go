// Package command parses textual instructions into command values and applies
// them to the client registry and its view. Commands are a sealed set of
// variants dispatched in a single place; each either performs one mutation or
// one view transformation, or fails leaving every component untouched.
package command

import (
	"fmt"

	"github.com/andy/clienthub/internal/domain"
	"github.com/andy/clienthub/internal/registry"
)

// Usage strings shown when a command line has the wrong shape.
const (
	AddUsage = "add: Adds a client to the registry.\n" +
		"Parameters: name/NAME phone/PHONE email/EMAIL address/ADDRESS [tag/TAG]... [pref/PREFERENCE] [freq/FREQUENCY]\n" +
		"Example: add name/John Doe phone/98765432 email/j@e.com address/Blk 1 tag/vip pref/Shampoo freq/7"
	EditUsage = "edit: Edits the client at the displayed index. Omitted fields keep their values.\n" +
		"Parameters: INDEX [name/NAME] [phone/PHONE] [email/EMAIL] [address/ADDRESS] [tag/TAG]... " +
		"[pref/PREFERENCE] [freq/FREQUENCY] [priority/LEVEL]\n" +
		"Example: edit 1 phone/91234567 priority/2"
	DeleteUsage = "delete: Deletes the client at the displayed index.\nParameters: INDEX\nExample: delete 2"
	FindUsage   = "find: Lists clients whose name, tags or product preference match any keyword.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\nExample: find alice tea"
	FilterUsage = "filter: Shows clients matching one condition.\n" +
		"Parameters: pref/PRODUCT or priority/LEVEL\nExample: filter pref/coffee"
	RankUsage   = "rank: Orders the displayed clients.\nParameters: name or total\nExample: rank total"
	DescUsage   = "desc: Sets the description of the client at the displayed index; empty text clears it.\n" +
		"Parameters: INDEX [TEXT]\nExample: desc 1 prefers morning deliveries"
	ExpandUsage = "expand: Shows the full details of the client at the displayed index.\nParameters: INDEX\nExample: expand 1"
)

// Command is one parsed user instruction. The set of implementations is
// closed; Execute dispatches over it.
type Command interface {
	isCommand()
}

// Add inserts a fully-parsed client into the registry.
type Add struct {
	Client domain.Client
}

// Edit merges a partial descriptor over the client at a 1-based display index.
type Edit struct {
	Index      int
	Descriptor Descriptor
}

// Delete removes the client at a 1-based display index.
type Delete struct {
	Index int
}

// List resets the view to show every client in the default name order.
type List struct{}

// Find filters the view by whole-word keyword match.
type Find struct {
	Keywords []string
}

// Filter narrows the view by exactly one condition: a preference substring or
// an exact priority level. The parser guarantees exactly one is set.
type Filter struct {
	Preference string
	Priority   *domain.Priority
}

// RankKey selects a ranking order.
type RankKey int

const (
	RankByName RankKey = iota
	RankByTotal
)

// Rank reorders the currently filtered clients.
type Rank struct {
	By RankKey
}

// Desc replaces the description of the client at a 1-based display index;
// empty text clears it.
type Desc struct {
	Index int
	Text  string
}

// Expand requests the detail view for the client at a 1-based display index.
type Expand struct {
	Index int
}

// Clear empties the registry.
type Clear struct{}

// Exit asks the application to terminate.
type Exit struct{}

// Help asks the renderer to show the command reference.
type Help struct{}

func (Add) isCommand()    {}
func (Edit) isCommand()   {}
func (Delete) isCommand() {}
func (List) isCommand()   {}
func (Find) isCommand()   {}
func (Filter) isCommand() {}
func (Rank) isCommand()   {}
func (Desc) isCommand()   {}
func (Expand) isCommand() {}
func (Clear) isCommand()  {}
func (Exit) isCommand()   {}
func (Help) isCommand()   {}

// Result is what a successful command hands back to the rendering
// collaborator: feedback text plus side-effect flags.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	Expanded *domain.Client
}

// Execute applies one command to the registry and view. On error both are
// left in their prior state.
func Execute(cmd Command, reg *registry.Registry, view *registry.View) (Result, error) {
	switch c := cmd.(type) {
	case Add:
		return executeAdd(c, reg)
	case Edit:
		return executeEdit(c, reg, view)
	case Delete:
		return executeDelete(c, reg, view)
	case List:
		view.Reset()
		return Result{Feedback: "Listed all clients"}, nil
	case Find:
		view.SetFilter(registry.KeywordMatch(c.Keywords))
		return Result{Feedback: fmt.Sprintf("%d clients listed!", view.Len())}, nil
	case Filter:
		if c.Priority != nil {
			view.SetFilter(registry.PriorityIs(*c.Priority))
		} else {
			view.SetFilter(registry.PreferenceContains(c.Preference))
		}
		return Result{Feedback: fmt.Sprintf("%d clients listed!", view.Len())}, nil
	case Rank:
		if c.By == RankByTotal {
			view.SetSort(registry.ByTotalPurchase)
		} else {
			view.SetSort(registry.ByName)
		}
		return Result{Feedback: fmt.Sprintf("%d clients ranked!", view.Len())}, nil
	case Desc:
		return executeDesc(c, reg, view)
	case Expand:
		client, ok := view.At(c.Index - 1)
		if !ok {
			return Result{}, validationErr(MsgInvalidIndex)
		}
		return Result{
			Feedback: fmt.Sprintf("Showing details for %s", client.Name()),
			Expanded: &client,
		}, nil
	case Clear:
		if err := reg.ReplaceAll(nil); err != nil {
			return Result{}, err
		}
		return Result{Feedback: "Client registry has been cleared!"}, nil
	case Exit:
		return Result{Feedback: "Exiting ClientHub...", Exit: true}, nil
	case Help:
		return Result{Feedback: "Showing help.", ShowHelp: true}, nil
	default:
		return Result{}, validationErr(MsgUnknownCommand)
	}
}

func executeAdd(c Add, reg *registry.Registry) (Result, error) {
	if reg.Contains(c.Client) {
		return Result{}, validationErr(MsgDuplicateClient)
	}
	if err := reg.Add(c.Client); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("New client added: %s", c.Client)}, nil
}

func executeEdit(c Edit, reg *registry.Registry, view *registry.View) (Result, error) {
	target, ok := view.At(c.Index - 1)
	if !ok {
		return Result{}, validationErr(MsgInvalidIndex)
	}
	edited, err := c.Descriptor.Apply(target)
	if err != nil {
		return Result{}, err
	}
	if !target.SameIdentity(edited) && reg.Contains(edited) {
		return Result{}, validationErr(MsgDuplicateClient)
	}
	if err := reg.Replace(target, edited); err != nil {
		return Result{}, err
	}
	// an edit may move the client out of the active filter; show everything
	view.SetFilter(registry.MatchAll)
	return Result{Feedback: fmt.Sprintf("Edited Client: %s", edited)}, nil
}

func executeDelete(c Delete, reg *registry.Registry, view *registry.View) (Result, error) {
	target, ok := view.At(c.Index - 1)
	if !ok {
		return Result{}, validationErr(MsgInvalidIndex)
	}
	if err := reg.Remove(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted Client: %s", target)}, nil
}

func executeDesc(c Desc, reg *registry.Registry, view *registry.View) (Result, error) {
	target, ok := view.At(c.Index - 1)
	if !ok {
		return Result{}, validationErr(MsgInvalidIndex)
	}

	var d Descriptor
	if text, ok := domain.NewDescription(c.Text); ok {
		d.Description = SetField(text)
	} else {
		d.Description = ClearField[domain.Description]()
	}
	edited, err := d.Apply(target)
	if err != nil {
		return Result{}, err
	}
	if err := reg.Replace(target, edited); err != nil {
		return Result{}, err
	}

	if _, hasDesc := edited.Description(); hasDesc {
		return Result{Feedback: fmt.Sprintf("Updated description for client: %s", edited.Name())}, nil
	}
	return Result{Feedback: fmt.Sprintf("Removed description for client: %s", edited.Name())}, nil
}
