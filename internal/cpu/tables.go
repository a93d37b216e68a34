package cpu

// implementerName maps the "CPU implementer" code reported by arm/arm64
// kernels to a vendor name. Unknown codes yield "".
func implementerName(code uint64) string {
	switch code {
	case 0x41:
		return "ARM"
	case 0x42:
		return "Broadcom"
	case 0x43:
		return "Cavium"
	case 0x44:
		return "DEC"
	case 0x46:
		return "Fujitsu"
	case 0x48:
		return "HiSilicon"
	case 0x49:
		return "Infineon"
	case 0x4d:
		return "Motorola/Freescale"
	case 0x4e:
		return "NVIDIA"
	case 0x50:
		return "APM"
	case 0x51:
		return "Qualcomm"
	case 0x56:
		return "Marvell"
	case 0x61:
		return "Apple"
	case 0x69:
		return "Intel"
	case 0xc0:
		return "Ampere"
	}
	return ""
}

const undefinedModel = "Undefined"

// armPartName maps an ARM Ltd "CPU part" number to its product name, see
// arch/arm64/include/asm/cputype.h. Unknown parts yield "Undefined".
func armPartName(part uint64) string {
	switch part {
	case 0x810:
		return "ARM810"
	case 0x920:
		return "ARM920"
	case 0x922:
		return "ARM922"
	case 0x926:
		return "ARM926"
	case 0x940:
		return "ARM940"
	case 0x946:
		return "ARM946"
	case 0x966:
		return "ARM966"
	case 0xa20:
		return "ARM1020"
	case 0xa22:
		return "ARM1022"
	case 0xa26:
		return "ARM1026"
	case 0xb02:
		return "ARM11 MPCore"
	case 0xb36:
		return "ARM1136"
	case 0xb56:
		return "ARM1156"
	case 0xb76:
		return "ARM1176"
	case 0xc05:
		return "Cortex-A5"
	case 0xc07:
		return "Cortex-A7"
	case 0xc08:
		return "Cortex-A8"
	case 0xc09:
		return "Cortex-A9"
	case 0xc0d:
		return "Cortex-A12"
	case 0xc0e:
		return "Cortex-A17"
	case 0xc0f:
		return "Cortex-A15"
	case 0xc14:
		return "Cortex-R4"
	case 0xc15:
		return "Cortex-R5"
	case 0xc17:
		return "Cortex-R7"
	case 0xc18:
		return "Cortex-R8"
	case 0xc20:
		return "Cortex-M0"
	case 0xc21:
		return "Cortex-M1"
	case 0xc23:
		return "Cortex-M3"
	case 0xc24:
		return "Cortex-M4"
	case 0xc27:
		return "Cortex-M7"
	case 0xc60:
		return "Cortex-M0+"
	case 0xd01:
		return "Cortex-A32"
	case 0xd02:
		return "Cortex-A34"
	case 0xd03:
		return "Cortex-A53"
	case 0xd04:
		return "Cortex-A35"
	case 0xd05:
		return "Cortex-A55"
	case 0xd06:
		return "Cortex-A65"
	case 0xd07:
		return "Cortex-A57"
	case 0xd08:
		return "Cortex-A72"
	case 0xd09:
		return "Cortex-A73"
	case 0xd0a:
		return "Cortex-A75"
	case 0xd0b:
		return "Cortex-A76"
	case 0xd0c:
		return "Neoverse-N1"
	case 0xd0d:
		return "Cortex-A77"
	case 0xd0e:
		return "Cortex-A76AE"
	case 0xd13:
		return "Cortex-R52"
	case 0xd15:
		return "Cortex-R82"
	case 0xd16:
		return "Cortex-R52+"
	case 0xd20:
		return "Cortex-M23"
	case 0xd21:
		return "Cortex-M33"
	case 0xd22:
		return "Cortex-M55"
	case 0xd23:
		return "Cortex-M85"
	case 0xd24:
		return "Cortex-M52"
	case 0xd40:
		return "Neoverse-V1"
	case 0xd41:
		return "Cortex-A78"
	case 0xd42:
		return "Cortex-A78AE"
	case 0xd43:
		return "Cortex-A65AE"
	case 0xd44:
		return "Cortex-X1"
	case 0xd46:
		return "Cortex-A510"
	case 0xd47:
		return "Cortex-A710"
	case 0xd48:
		return "Cortex-X2"
	case 0xd49:
		return "Neoverse-N2"
	case 0xd4a:
		return "Neoverse-E1"
	case 0xd4b:
		return "Cortex-A78C"
	case 0xd4c:
		return "Cortex-X1C"
	case 0xd4d:
		return "Cortex-A715"
	case 0xd4e:
		return "Cortex-X3"
	case 0xd4f:
		return "Neoverse-V2"
	case 0xd80:
		return "Cortex-A520"
	case 0xd81:
		return "Cortex-A720"
	case 0xd82:
		return "Cortex-X4"
	case 0xd83:
		return "Neoverse-V3AE"
	case 0xd84:
		return "Neoverse-V3"
	case 0xd85:
		return "Cortex-X925"
	case 0xd87:
		return "Cortex-A725"
	case 0xd88:
		return "Cortex-A520AE"
	case 0xd89:
		return "Cortex-A720AE"
	case 0xd8e:
		return "Neoverse-N3"
	}
	return undefinedModel
}
