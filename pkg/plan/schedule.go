package plan

// defaultSchedule is the built-in 365-day chronological reading plan:
// every chapter of the canon exactly once, in rough historical order,
// three to four chapters a day. Used to seed the state file when none
// exists yet.
var defaultSchedule = [...]string{
	"Genesis 1-3",
	"Genesis 4-7",
	"Genesis 8-10",
	"Genesis 11;Job 1-2",
	"Job 3-5",
	"Job 6-9",
	"Job 10-12",
	"Job 13-15",
	"Job 16-18",
	"Job 19-22",
	"Job 23-25",
	"Job 26-28",
	"Job 29-31",
	"Job 32-35",
	"Job 36-38",
	"Job 39-41",
	"Job 42;Genesis 12-13",
	"Genesis 14-17",
	"Genesis 18-20",
	"Genesis 21-23",
	"Genesis 24-26",
	"Genesis 27-30",
	"Genesis 31-33",
	"Genesis 34-36",
	"Genesis 37-39",
	"Genesis 40-43",
	"Genesis 44-46",
	"Genesis 47-49",
	"Genesis 50;Exodus 1-2",
	"Exodus 3-6",
	"Exodus 7-9",
	"Exodus 10-12",
	"Exodus 13-15",
	"Exodus 16-19",
	"Exodus 20-22",
	"Exodus 23-25",
	"Exodus 26-29",
	"Exodus 30-32",
	"Exodus 33-35",
	"Exodus 36-38",
	"Exodus 39-40;Leviticus 1-2",
	"Leviticus 3-5",
	"Leviticus 6-8",
	"Leviticus 9-11",
	"Leviticus 12-15",
	"Leviticus 16-18",
	"Leviticus 19-21",
	"Leviticus 22-24",
	"Leviticus 25-27;Numbers 1",
	"Numbers 2-4",
	"Numbers 5-7",
	"Numbers 8-10",
	"Numbers 11-14",
	"Numbers 15-17",
	"Numbers 18-20",
	"Numbers 21-23",
	"Numbers 24-27",
	"Numbers 28-30",
	"Numbers 31-33",
	"Numbers 34-36",
	"Deuteronomy 1-4",
	"Deuteronomy 5-7",
	"Deuteronomy 8-10",
	"Deuteronomy 11-13",
	"Deuteronomy 14-17",
	"Deuteronomy 18-20",
	"Deuteronomy 21-23",
	"Deuteronomy 24-27",
	"Deuteronomy 28-30",
	"Deuteronomy 31-33",
	"Deuteronomy 34;Joshua 1-2",
	"Joshua 3-6",
	"Joshua 7-9",
	"Joshua 10-12",
	"Joshua 13-15",
	"Joshua 16-19",
	"Joshua 20-22",
	"Joshua 23-24;Judges 1",
	"Judges 2-4",
	"Judges 5-8",
	"Judges 9-11",
	"Judges 12-14",
	"Judges 15-17",
	"Judges 18-21",
	"Ruth 1-3",
	"Ruth 4;1 Samuel 1-2",
	"1 Samuel 3-5",
	"1 Samuel 6-9",
	"1 Samuel 10-12",
	"1 Samuel 13-15",
	"1 Samuel 16-18",
	"1 Samuel 19-22",
	"1 Samuel 23-25",
	"1 Samuel 26-28",
	"1 Samuel 29-31",
	"2 Samuel 1-4",
	"2 Samuel 5-7",
	"2 Samuel 8-10",
	"2 Samuel 11-13",
	"2 Samuel 14-17",
	"2 Samuel 18-20",
	"2 Samuel 21-23",
	"2 Samuel 24;Psalms 1-3",
	"Psalms 4-6",
	"Psalms 7-9",
	"Psalms 10-12",
	"Psalms 13-16",
	"Psalms 17-19",
	"Psalms 20-22",
	"Psalms 23-25",
	"Psalms 26-29",
	"Psalms 30-32",
	"Psalms 33-35",
	"Psalms 36-38",
	"Psalms 39-42",
	"Psalms 43-45",
	"Psalms 46-48",
	"Psalms 49-51",
	"Psalms 52-55",
	"Psalms 56-58",
	"Psalms 59-61",
	"Psalms 62-64",
	"Psalms 65-68",
	"Psalms 69-71",
	"Psalms 72-74",
	"Psalms 75-77",
	"Psalms 78-81",
	"Psalms 82-84",
	"Psalms 85-87",
	"Psalms 88-90",
	"Psalms 91-94",
	"Psalms 95-97",
	"Psalms 98-100",
	"Psalms 101-104",
	"Psalms 105-107",
	"Psalms 108-110",
	"Psalms 111-113",
	"Psalms 114-117",
	"Psalms 118-120",
	"Psalms 121-123",
	"Psalms 124-126",
	"Psalms 127-130",
	"Psalms 131-133",
	"Psalms 134-136",
	"Psalms 137-139",
	"Psalms 140-143",
	"Psalms 144-146",
	"Psalms 147-149",
	"Psalms 150;1 Kings 1-2",
	"1 Kings 3-6",
	"1 Kings 7-9",
	"1 Kings 10-11;Proverbs 1",
	"Proverbs 2-4",
	"Proverbs 5-8",
	"Proverbs 9-11",
	"Proverbs 12-14",
	"Proverbs 15-17",
	"Proverbs 18-21",
	"Proverbs 22-24",
	"Proverbs 25-27",
	"Proverbs 28-30",
	"Proverbs 31;Ecclesiastes 1-3",
	"Ecclesiastes 4-6",
	"Ecclesiastes 7-9",
	"Ecclesiastes 10-12",
	"Song of Solomon 1-4",
	"Song of Solomon 5-7",
	"Song of Solomon 8;1 Kings 12-13",
	"1 Kings 14-17",
	"1 Kings 18-20",
	"1 Kings 21-22;Amos 1",
	"Amos 2-4",
	"Amos 5-8",
	"Amos 9;Hosea 1-2",
	"Hosea 3-5",
	"Hosea 6-8",
	"Hosea 9-12",
	"Hosea 13-14;Jonah 1",
	"Jonah 2-4",
	"Micah 1-3",
	"Micah 4-7",
	"2 Kings 1-3",
	"2 Kings 4-6",
	"2 Kings 7-9",
	"2 Kings 10-13",
	"2 Kings 14-16",
	"2 Kings 17-19",
	"2 Kings 20-22",
	"2 Kings 23-25;Isaiah 1",
	"Isaiah 2-4",
	"Isaiah 5-7",
	"Isaiah 8-10",
	"Isaiah 11-14",
	"Isaiah 15-17",
	"Isaiah 18-20",
	"Isaiah 21-23",
	"Isaiah 24-27",
	"Isaiah 28-30",
	"Isaiah 31-33",
	"Isaiah 34-37",
	"Isaiah 38-40",
	"Isaiah 41-43",
	"Isaiah 44-46",
	"Isaiah 47-50",
	"Isaiah 51-53",
	"Isaiah 54-56",
	"Isaiah 57-59",
	"Isaiah 60-63",
	"Isaiah 64-66",
	"Nahum 1-3",
	"Zephaniah 1-3",
	"Habakkuk 1-3;Jeremiah 1",
	"Jeremiah 2-4",
	"Jeremiah 5-7",
	"Jeremiah 8-10",
	"Jeremiah 11-14",
	"Jeremiah 15-17",
	"Jeremiah 18-20",
	"Jeremiah 21-23",
	"Jeremiah 24-27",
	"Jeremiah 28-30",
	"Jeremiah 31-33",
	"Jeremiah 34-36",
	"Jeremiah 37-40",
	"Jeremiah 41-43",
	"Jeremiah 44-46",
	"Jeremiah 47-49",
	"Jeremiah 50-52;Lamentations 1",
	"Lamentations 2-4",
	"Lamentations 5;Obadiah;Ezekiel 1",
	"Ezekiel 2-4",
	"Ezekiel 5-8",
	"Ezekiel 9-11",
	"Ezekiel 12-14",
	"Ezekiel 15-18",
	"Ezekiel 19-21",
	"Ezekiel 22-24",
	"Ezekiel 25-27",
	"Ezekiel 28-31",
	"Ezekiel 32-34",
	"Ezekiel 35-37",
	"Ezekiel 38-40",
	"Ezekiel 41-44",
	"Ezekiel 45-47",
	"Ezekiel 48;Daniel 1-2",
	"Daniel 3-5",
	"Daniel 6-9",
	"Daniel 10-12",
	"Joel 1-3",
	"1 Chronicles 1-3",
	"1 Chronicles 4-7",
	"1 Chronicles 8-10",
	"1 Chronicles 11-13",
	"1 Chronicles 14-16",
	"1 Chronicles 17-20",
	"1 Chronicles 21-23",
	"1 Chronicles 24-26",
	"1 Chronicles 27-29",
	"2 Chronicles 1-4",
	"2 Chronicles 5-7",
	"2 Chronicles 8-10",
	"2 Chronicles 11-13",
	"2 Chronicles 14-17",
	"2 Chronicles 18-20",
	"2 Chronicles 21-23",
	"2 Chronicles 24-27",
	"2 Chronicles 28-30",
	"2 Chronicles 31-33",
	"2 Chronicles 34-36",
	"Ezra 1-4",
	"Ezra 5-7",
	"Ezra 8-10",
	"Haggai 1-2;Zechariah 1",
	"Zechariah 2-5",
	"Zechariah 6-8",
	"Zechariah 9-11",
	"Zechariah 12-14",
	"Esther 1-4",
	"Esther 5-7",
	"Esther 8-10",
	"Nehemiah 1-3",
	"Nehemiah 4-7",
	"Nehemiah 8-10",
	"Nehemiah 11-13",
	"Malachi 1-3",
	"Malachi 4;Matthew 1-3",
	"Matthew 4-6",
	"Matthew 7-9",
	"Matthew 10-12",
	"Matthew 13-16",
	"Matthew 17-19",
	"Matthew 20-22",
	"Matthew 23-25",
	"Matthew 26-28;Mark 1",
	"Mark 2-4",
	"Mark 5-7",
	"Mark 8-10",
	"Mark 11-14",
	"Mark 15-16;Luke 1",
	"Luke 2-4",
	"Luke 5-8",
	"Luke 9-11",
	"Luke 12-14",
	"Luke 15-17",
	"Luke 18-21",
	"Luke 22-24",
	"John 1-3",
	"John 4-6",
	"John 7-10",
	"John 11-13",
	"John 14-16",
	"John 17-19",
	"John 20-21;Acts 1-2",
	"Acts 3-5",
	"Acts 6-8",
	"Acts 9-11",
	"Acts 12-15",
	"Acts 16-18",
	"Acts 19-21",
	"Acts 22-24",
	"Acts 25-28",
	"James 1-3",
	"James 4-5;1 Thessalonians 1",
	"1 Thessalonians 2-4",
	"1 Thessalonians 5;2 Thessalonians 1-3",
	"Galatians 1-3",
	"Galatians 4-6",
	"1 Corinthians 1-3",
	"1 Corinthians 4-7",
	"1 Corinthians 8-10",
	"1 Corinthians 11-13",
	"1 Corinthians 14-16;2 Corinthians 1",
	"2 Corinthians 2-4",
	"2 Corinthians 5-7",
	"2 Corinthians 8-10",
	"2 Corinthians 11-13;Romans 1",
	"Romans 2-4",
	"Romans 5-7",
	"Romans 8-10",
	"Romans 11-14",
	"Romans 15-16;Colossians 1",
	"Colossians 2-4",
	"Philemon;Ephesians 1-2",
	"Ephesians 3-6",
	"Philippians 1-3",
	"Philippians 4;1 Timothy 1-2",
	"1 Timothy 3-5",
	"1 Timothy 6;Titus 1-3",
	"1 Peter 1-3",
	"1 Peter 4-5;Hebrews 1",
	"Hebrews 2-4",
	"Hebrews 5-8",
	"Hebrews 9-11",
	"Hebrews 12-13;2 Timothy 1",
	"2 Timothy 2-4",
	"2 Peter 1-3;Jude",
	"1 John 1-3",
	"1 John 4-5;2 John",
	"3 John;Revelation 1-2",
	"Revelation 3-6",
	"Revelation 7-9",
	"Revelation 10-12",
	"Revelation 13-15",
	"Revelation 16-19",
	"Revelation 20-22",
}
