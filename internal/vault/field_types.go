package vault

// Header field types currently given typed interpretation.
// Any other raw type read from a header round-trips verbatim.
const (
	HeaderVersion   uint8 = 0x00
	HeaderLastSave  uint8 = 0x04
	HeaderWhatSaved uint8 = 0x06
)

// Record field types currently given typed interpretation.
// Any other raw type round-trips verbatim.
const (
	FieldUUID       uint8 = 0x01
	FieldGroup      uint8 = 0x02
	FieldTitle      uint8 = 0x03
	FieldUser       uint8 = 0x04
	FieldNotes      uint8 = 0x05
	FieldPasswd     uint8 = 0x06
	FieldCreated    uint8 = 0x07
	FieldLastMod    uint8 = 0x0c
	FieldURL        uint8 = 0x0d
	FieldEndOfEntry uint8 = 0xff
)

// ProducerVersion is what Save stamps into the WHAT_SAVED header field.
const ProducerVersion = "pws3vault v1.00"
