package eventstream

import "github.com/zorael/kameloso-sub000/irc"

// ToRecord flattens an irc.Event into its wire shape.
func ToRecord(ev irc.Event) *EventRecord {
	return &EventRecord{
		Type: string(ev.Type),
		Num:  int32(ev.Num),
		Raw:  ev.Raw,

		SenderNick:    ev.Sender.Nickname,
		SenderIdent:   ev.Sender.Ident,
		SenderAddress: ev.Sender.Address,

		TargetNick:    ev.Target.Nickname,
		TargetAddress: ev.Target.Address,

		Channel: ev.Channel,
		Content: ev.Content,
		Aux:     ev.Aux,
		Tags:    ev.Tags,

		Role:       int32(ev.Role),
		RoleString: ev.RoleString,
		Colour:     ev.Colour,

		UnixNano: ev.Time.UnixNano(),
	}
}
