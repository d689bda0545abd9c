package calldata

// Calldata of real transactions.
const (
	singleOffsetCalldata = "0x5d842074" +
		"000000000000000000000000000000000000000000000006c6b935b8bbd40000" +
		"0000000000000000000000000000000000000000000000000000000000000040" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"00000000000000000000000000000000000000000000002086ac351052600000" +
		"00000000000000000000000000000000000000000000002b5e3af16b18800000"

	mintRefundMulticall = "0xac9650d8" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"0000000000000000000000000000000000000000000000000000000000000040" +
		"00000000000000000000000000000000000000000000000000000000000001e0" +
		"0000000000000000000000000000000000000000000000000000000000000164" +
		"88316456000000000000000000000000c011a73ee8576fb46f5e1c5751ca3b9f" +
		"e0af2a6f000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead908" +
		"3c756cc200000000000000000000000000000000000000000000000000000000" +
		"00002710ffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
		"fffee530ffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
		"ffff1b1800000000000000000000000000000000000000000000000001634578" +
		"5d89fd6800000000000000000000000000000000000000000000000000007f73" +
		"eca3063a000000000000000000000000000000000000000000000000016042b5" +
		"30ddaec600000000000000000000000000000000000000000000000000007e59" +
		"f044bada000000000000000000000000f847e9d51989033b691b8be943f8e9e2" +
		"68f99b9e00000000000000000000000000000000000000000000000000000000" +
		"6377347700000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"12210e8a00000000000000000000000000000000000000000000000000000000"

	createMintRefundMulticall = "0xac9650d8" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000003" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"0000000000000000000000000000000000000000000000000000000000000120" +
		"00000000000000000000000000000000000000000000000000000000000002c0" +
		"0000000000000000000000000000000000000000000000000000000000000084" +
		"13ead56200000000000000000000000061fe7a5257b963f231e1ef6e22cb3b4c" +
		"6e28c531000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead908" +
		"3c756cc200000000000000000000000000000000000000000000000000000000" +
		"00002710000000000000000000000000000000000000000000831162ce86bc88" +
		"052f80fd00000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000164" +
		"8831645600000000000000000000000061fe7a5257b963f231e1ef6e22cb3b4c" +
		"6e28c531000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead908" +
		"3c756cc200000000000000000000000000000000000000000000000000000000" +
		"00002710ffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
		"fffaf17800000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000002e3bdc2534919" +
		"6582d720000000000000000000000000000000000000000000000000c249fdd3" +
		"2778000000000000000000000000000000000000000000000002e1e525c2ef9d" +
		"cec50c53000000000000000000000000000000000000000000000000c1cd7c9a" +
		"dfb0d9dc000000000000000000000000ed6c2cb9bf89a2d290e59025837454bf" +
		"1f144c5000000000000000000000000000000000000000000000000000000000" +
		"635ce8bf00000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"12210e8a00000000000000000000000000000000000000000000000000000000"

	stringArgCalldata = "0xcf970086" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"0000000000000000000000000000000000000000000000000000000000000040" +
		"0000000000000000000000000000000000000000000000000000000000000180" +
		"0000000000000000000000000000000000000000000000000000000000000003" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"00000000000000000000000000000000000000000000000000000000000000a0" +
		"00000000000000000000000000000000000000000000000000000000000000e0" +
		"0000000000000000000000000000000000000000000000000000000000000003" +
		"3132330000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"3435000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"3631333400000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000003" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"00000000000000000000000000000000000000000000000000000000000000a0" +
		"00000000000000000000000000000000000000000000000000000000000000e0" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"6100000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"6200000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000001" +
		"6300000000000000000000000000000000000000000000000000000000000000"

	deadlineMulticall = "0x5ae401dc" +
		"00000000000000000000000000000000000000000000000000000000638292b3" +
		"0000000000000000000000000000000000000000000000000000000000000040" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"0000000000000000000000000000000000000000000000000000000000000040" +
		"0000000000000000000000000000000000000000000000000000000000000140" +
		"00000000000000000000000000000000000000000000000000000000000000c4" +
		"4659a4940000000000000000000000006b175474e89094c44da98b954eedeac4" +
		"95271d0f00000000000000000000000000000000000000000000000000000000" +
		"0000000100000000000000000000000000000000000000000000000000000000" +
		"638296c700000000000000000000000000000000000000000000000000000000" +
		"0000001c8892b2afb729fb079b7786393f3884f1d7317f18e9692bf4e8db90cf" +
		"97f5854967048010f45d896e0c465dad3952be95afce410d0769c4014c827c20" +
		"f0cc525d00000000000000000000000000000000000000000000000000000000" +
		"00000000000000000000000000000000000000000000000000000000000000e4" +
		"04e45aaf0000000000000000000000006b175474e89094c44da98b954eedeac4" +
		"95271d0f000000000000000000000000a0b86991c6218b36c1d19d4a2e9eb0ce" +
		"3606eb4800000000000000000000000000000000000000000000000000000000" +
		"000001f4000000000000000000000000a9af48f8cd3df47f913eefb032386f2d" +
		"6debfb3500000000000000000000000000000000000000000000001be7653538" +
		"b68d564a00000000000000000000000000000000000000000000000000000000" +
		"1e8297ae00000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000"

	paddedTailCalldata = "0x710a9f68" +
		"00000000000000000000000000000000000000000000000000000000000005e4" +
		"000000000000000000000000dc9c7a2bae15dd89271ae5701a6f4db147baa44c" +
		"0000000000000000000000000000000000000000000000000000000000000060" +
		"0000000000000000000000000000000000000000000000000000000000000124" +
		"95723b1c0000000000000000000000006b175474e89094c44da98b954eedeac4" +
		"95271d0f000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead908" +
		"3c756cc200000000000000000000000000000000000000000000000211d72bb3" +
		"049586a700000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000006ee543b3be" +
		"5a28a8f900000000000000000000000000000000000000000000000016687535" +
		"bce5778600000000000000000000000000000000000000000000000000000000"
)
