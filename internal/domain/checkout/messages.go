package checkout

import "strings"

type Locale string

const (
	LocalePT Locale = "pt"
	LocaleES Locale = "es"
	LocaleEN Locale = "en"

	PrimaryLocale = LocalePT
)

type MessageKey string

const (
	MsgNameRequired             MessageKey = "validation.name_required"
	MsgEmailInvalid             MessageKey = "validation.email_invalid"
	MsgPhoneRequired            MessageKey = "validation.phone_required"
	MsgAgeRequired              MessageKey = "validation.age_required"
	MsgGenderRequired           MessageKey = "validation.gender_required"
	MsgNationalIDRequired       MessageKey = "validation.national_id_required"
	MsgNationalIDPrimary        MessageKey = "validation.national_id_primary_format"
	MsgNationalIDSecondary      MessageKey = "validation.national_id_secondary_format"
	MsgCountryRequired          MessageKey = "validation.country_required"
	MsgPostalCodeRequired       MessageKey = "validation.postal_code_required"
	MsgStreetRequired           MessageKey = "validation.street_required"
	MsgNumberRequired           MessageKey = "validation.number_required"
	MsgCityRequired             MessageKey = "validation.city_required"
	MsgShirtSizeRequired        MessageKey = "validation.shirt_size_required"
	MsgShirtSizeUnavailable     MessageKey = "validation.shirt_size_unavailable"
	MsgEmergencyNameRequired    MessageKey = "validation.emergency_name_required"
	MsgEmergencyPhoneRequired   MessageKey = "validation.emergency_phone_required"
	MsgWaiverRequired           MessageKey = "validation.waiver_required"
	MsgPaymentMethodRequired    MessageKey = "validation.payment_method_required"
	MsgSoldOut                  MessageKey = "checkout.sold_out"
	MsgSubmissionFailed         MessageKey = "checkout.submission_failed"
	MsgGroupDiscountUnavailable MessageKey = "checkout.group_discount_unavailable"
)

var messages = map[Locale]map[MessageKey]string{
	LocalePT: {
		MsgNameRequired:             "Informe o nome completo.",
		MsgEmailInvalid:             "Informe um e-mail válido.",
		MsgPhoneRequired:            "Informe o telefone.",
		MsgAgeRequired:              "Informe a idade.",
		MsgGenderRequired:           "Informe o gênero.",
		MsgNationalIDRequired:       "Informe o documento de identificação.",
		MsgNationalIDPrimary:        "O CPF deve ter exatamente 11 dígitos.",
		MsgNationalIDSecondary:      "O documento deve ter pelo menos 7 dígitos.",
		MsgCountryRequired:          "Informe o país de residência.",
		MsgPostalCodeRequired:       "Informe o CEP.",
		MsgStreetRequired:           "Informe a rua.",
		MsgNumberRequired:           "Informe o número.",
		MsgCityRequired:             "Informe a cidade.",
		MsgShirtSizeRequired:        "Escolha o tamanho da camiseta.",
		MsgShirtSizeUnavailable:     "Tamanho de camiseta indisponível para esta categoria.",
		MsgEmergencyNameRequired:    "Informe o nome do contato de emergência.",
		MsgEmergencyPhoneRequired:   "Informe o telefone do contato de emergência.",
		MsgWaiverRequired:           "É necessário aceitar o termo de responsabilidade.",
		MsgPaymentMethodRequired:    "Escolha a forma de pagamento.",
		MsgSoldOut:                  "Ingressos esgotados para esta categoria.",
		MsgSubmissionFailed:         "Não foi possível concluir a inscrição. Tente novamente.",
		MsgGroupDiscountUnavailable: "Desconto de assessoria indisponível.",
	},
	LocaleES: {
		MsgNameRequired:             "Ingrese el nombre completo.",
		MsgEmailInvalid:             "Ingrese un correo electrónico válido.",
		MsgPhoneRequired:            "Ingrese el teléfono.",
		MsgAgeRequired:              "Ingrese la edad.",
		MsgGenderRequired:           "Ingrese el género.",
		MsgNationalIDRequired:       "Ingrese el documento de identidad.",
		MsgNationalIDPrimary:        "El CPF debe tener exactamente 11 dígitos.",
		MsgNationalIDSecondary:      "El documento debe tener al menos 7 dígitos.",
		MsgCountryRequired:          "Ingrese el país de residencia.",
		MsgPostalCodeRequired:       "Ingrese el código postal.",
		MsgStreetRequired:           "Ingrese la calle.",
		MsgNumberRequired:           "Ingrese el número.",
		MsgCityRequired:             "Ingrese la ciudad.",
		MsgShirtSizeRequired:        "Elija el talle de la remera.",
		MsgShirtSizeUnavailable:     "Talle de remera no disponible para esta categoría.",
		MsgEmergencyNameRequired:    "Ingrese el nombre del contacto de emergencia.",
		MsgEmergencyPhoneRequired:   "Ingrese el teléfono del contacto de emergencia.",
		MsgWaiverRequired:           "Debe aceptar el deslinde de responsabilidad.",
		MsgPaymentMethodRequired:    "Elija el medio de pago.",
		MsgSoldOut:                  "Entradas agotadas para esta categoría.",
		MsgSubmissionFailed:         "No fue posible completar la inscripción. Intente nuevamente.",
		MsgGroupDiscountUnavailable: "Descuento de grupo no disponible.",
	},
	LocaleEN: {
		MsgNameRequired:             "Enter the full name.",
		MsgEmailInvalid:             "Enter a valid email address.",
		MsgPhoneRequired:            "Enter a phone number.",
		MsgAgeRequired:              "Enter the age.",
		MsgGenderRequired:           "Enter the gender.",
		MsgNationalIDRequired:       "Enter the national id.",
		MsgNationalIDPrimary:        "The CPF must have exactly 11 digits.",
		MsgNationalIDSecondary:      "The national id must have at least 7 digits.",
		MsgCountryRequired:          "Enter the country of residence.",
		MsgPostalCodeRequired:       "Enter the postal code.",
		MsgStreetRequired:           "Enter the street.",
		MsgNumberRequired:           "Enter the street number.",
		MsgCityRequired:             "Enter the city.",
		MsgShirtSizeRequired:        "Choose a shirt size.",
		MsgShirtSizeUnavailable:     "Shirt size not available for this category.",
		MsgEmergencyNameRequired:    "Enter the emergency contact name.",
		MsgEmergencyPhoneRequired:   "Enter the emergency contact phone.",
		MsgWaiverRequired:           "You must accept the liability waiver.",
		MsgPaymentMethodRequired:    "Choose a payment method.",
		MsgSoldOut:                  "Tickets sold out for this category.",
		MsgSubmissionFailed:         "We could not complete the registration. Please try again.",
		MsgGroupDiscountUnavailable: "Group discount unavailable.",
	},
}

// ParseLocale maps tags such as "pt-BR" or "es_AR" to a supported locale,
// falling back to the primary one.
func ParseLocale(tag string) Locale {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_,;"); i >= 0 {
		tag = tag[:i]
	}
	l := Locale(tag)
	if _, ok := messages[l]; ok {
		return l
	}
	return PrimaryLocale
}

// Message never fails: an unknown locale reads the primary table and a
// missing key yields the key itself.
func Message(locale Locale, key MessageKey) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[PrimaryLocale]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	return string(key)
}
