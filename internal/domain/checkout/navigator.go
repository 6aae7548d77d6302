package checkout

import "errors"

var (
	ErrInvalidPhase        = errors.New("operation not allowed in current checkout phase")
	ErrNoProfilesSelected  = errors.New("no saved profiles selected")
	ErrParticipantMismatch = errors.New("participants and tickets are out of sync")
)

type Outcome string

const (
	OutcomeMoved         Outcome = "moved"
	OutcomeSavedProfiles Outcome = "saved_profiles"
	OutcomeReady         Outcome = "ready"
)

// AdvanceInput is the form posted on the current step. Only the fields that
// step owns are merged into the state, and only when validation passes.
type AdvanceInput struct {
	Participant   Participant
	PaymentMethod PaymentMethod
}

type Navigator struct {
	gate *ValidationGate
}

func NewNavigator(gate *ValidationGate) *Navigator {
	return &Navigator{gate: gate}
}

func (n *Navigator) Advance(s *State, in AdvanceInput) (Outcome, error) {
	if s.Phase != PhaseCollecting {
		return "", ErrInvalidPhase
	}
	if len(s.Participants) != len(s.SelectedTickets) {
		return "", ErrParticipantMismatch
	}

	method := s.PaymentMethod
	if in.PaymentMethod != "" {
		method = in.PaymentMethod
	}

	merged := s.Current().MergeStep(s.Step, in.Participant)

	err := n.gate.ValidateThrough(merged, StepContext{
		Step:           s.Step,
		Ticket:         s.CurrentTicket(),
		HasShirtOption: s.HasShirtOption(),
		IsFreeOrder:    s.IsFreeOrder(),
		PaymentMethod:  method,
		Locale:         s.Locale,
	})
	if err != nil {
		return "", err
	}

	s.Participants[s.ParticipantIndex] = merged
	if s.Step == lastStep {
		s.PaymentMethod = method
	}

	switch {
	case s.Step < lastStep:
		s.Step++
		return OutcomeMoved, nil
	case !s.IsLastParticipant():
		s.ParticipantIndex++
		s.Step = StepIdentity
		return OutcomeMoved, nil
	case s.ParticipantCount() == 1 && s.OwnerHasSavedProfiles:
		s.Phase = PhaseSavedProfiles
		return OutcomeSavedProfiles, nil
	default:
		s.Phase = PhaseReady
		return OutcomeReady, nil
	}
}

// Retreat steps back one screen. From the interstitial or the ready phase it
// returns to the last participant's final step.
func (n *Navigator) Retreat(s *State) error {
	switch s.Phase {
	case PhaseSavedProfiles, PhaseReady:
		s.Phase = PhaseCollecting
		s.ParticipantIndex = s.ParticipantCount() - 1
		s.Step = lastStep
		return nil
	case PhaseCollecting:
	default:
		return ErrInvalidPhase
	}

	switch {
	case s.Step > StepIdentity:
		s.Step--
	case s.ParticipantIndex > 0:
		s.ParticipantIndex--
		s.Step = lastStep
	}
	return nil
}

// AddSavedProfiles grows the party from the owner's saved profiles. Each new
// participant takes a copy of the single selected ticket and goes through the
// steps like any other.
func (n *Navigator) AddSavedProfiles(s *State, profiles []Participant) error {
	if s.Phase != PhaseSavedProfiles || s.ParticipantCount() != 1 {
		return ErrInvalidPhase
	}
	if len(profiles) == 0 {
		return ErrNoProfilesSelected
	}

	ticket := s.SelectedTickets[0]
	for _, p := range profiles {
		s.Participants = append(s.Participants, p)
		s.SelectedTickets = append(s.SelectedTickets, ticket)
	}
	s.ParticipantIndex = 1
	s.Step = StepIdentity
	s.Phase = PhaseCollecting
	return nil
}

func (n *Navigator) SkipSavedProfiles(s *State) error {
	if s.Phase != PhaseSavedProfiles {
		return ErrInvalidPhase
	}
	s.Phase = PhaseReady
	return nil
}

func (n *Navigator) MarkSubmitted(s *State, registrationNumbers []string) error {
	if s.Phase != PhaseReady {
		return ErrInvalidPhase
	}
	s.Phase = PhaseSubmitted
	s.RegistrationNumbers = registrationNumbers
	return nil
}
