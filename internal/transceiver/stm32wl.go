package transceiver

// Command and register tables for the STM32WL sub-GHz radio, transcribed
// from the reference manual (RM0461). Pure data; lookup behavior lives
// in table.go.

// DefaultCommands returns the built-in STM32WL command table.
func DefaultCommands() CommandTable {
	return CommandTable{
		0x89: "Calibrate",
		0x98: "CalibrateImage",
		0x08: "CfgDioIrq",
		0x07: "ClrError",
		0x02: "ClrIrqStatus",
		0x17: "GetError",
		0x12: "GetIrqStatus",
		0x14: "GetPacketStatus",
		0x11: "GetPacketType",
		0x15: "GetRssiInst",
		0x13: "GetRxBufferStatus",
		0x10: "GetStats",
		0xC0: "GetStatus",
		0x1E: "ReadBuffer",
		0x1D: "RegRegister",
		0x00: "ResetStats",
		0x8F: "SetBufferBaseAddress",
		0xC5: "SetCad",
		0x88: "SetCadParams",
		0xC1: "SetFs",
		0xA0: "SetLoRaSymbTimeout",
		0x8B: "SetModulationParams",
		0x8C: "SetPacketParams",
		0x8A: "SetPacketType",
		0x95: "SetPaConfig",
		0x96: "SetRegulatorMode",
		0x86: "SetRfFrequency",
		0x82: "SetRx",
		0x94: "SetRxDutyCycle",
		0x84: "SetSleep",
		0x80: "SetStandby",
		0x9F: "SetStopRxTimerOnPreamble",
		0x97: "SetTcxoMode",
		0x83: "SetTx",
		0xD2: "SetTxContinuousPreamble",
		0xD1: "SetTxContinuousWave",
		0x8E: "SetTxParams",
		0x93: "SetTxRxFallbackMode",
		0x0E: "WriteBuffer",
		0x0D: "WriteRegister",
	}
}

// DefaultRegisters returns the built-in STM32WL register table.
func DefaultRegisters() RegisterTable {
	return RegisterTable{
		// Generic bit synchronization.
		0x06AC: "GBSYNC",
		// Generic packet control.
		0x06B8: "GPKTCTL1A",
		// Generic whitening.
		0x06B9: "GWHITEINIRL",
		// Generic CRC initial.
		0x06BC: "GCRCINIRH",
		// Generic CRC polynomial.
		0x06BE: "GCRCPOLRH",
		// Generic synchronization word 7.
		0x06C0: "GSYNC7",
		// Node address.
		0x06CD: "NODE",
		// Broadcast address.
		0x06CE: "BROADCAST",
		// LoRa synchronization word MSB.
		0x0740: "LSYNCH",
		// LoRa synchronization word LSB.
		0x0741: "LSYNCL",
		// Receiver gain control.
		0x08AC: "RXGAINC",
		// PA over current protection.
		0x08E7: "PAOCP",
		// RTC control.
		0x0902: "RTCCTLR",
		// RTC period MSB.
		0x0906: "RTCPRDR2",
		// RTC period mid-byte.
		0x0907: "RTCPRDR1",
		// RTC period LSB.
		0x0908: "RTCPRDR0",
		// HSE32 OSC_IN capacitor trim.
		0x0911: "HSEINTRIM",
		// HSE32 OSC_OUT capacitor trim.
		0x0912: "HSEOUTTRIM",
		// SMPS control 0.
		0x0916: "SMPSC0",
		// Power control.
		0x091A: "PC",
		// SMPS control 2.
		0x0923: "SMPSC2",
	}
}
