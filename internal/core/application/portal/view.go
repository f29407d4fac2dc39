package portal

import (
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/domain/model/session"
	"github.com/catx1/Medi-Drone-Delivery-System/internal/core/ports"
)

// ViewFor binds a lifecycle state to the visible portal sections. The
// binding is total: every state, including Unknown, maps to a fully
// specified view, and re-applying the view for the current state changes
// nothing. Unknown renders as a fresh Initial view.
func ViewFor(state session.State) ports.View {
	switch state {
	case session.Placing:
		return ports.View{
			ShowMedicationPicker: true,
			ShowOrderForm:        true,
		}
	case session.InTransit:
		return ports.View{
			ShowTracking: true,
		}
	case session.Arrived:
		return ports.View{
			ShowTracking:      true,
			ShowPickupConfirm: true,
		}
	case session.Collected:
		return ports.View{
			ShowCompleted: true,
		}
	default:
		return ports.View{
			ShowAddressSearch:   true,
			ShowLocationConfirm: true,
		}
	}
}
